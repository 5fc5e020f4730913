package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *stubTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *stubTransactionRepo) FindByIDAndUser(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id && txn.UserID == userID {
			return txn, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *stubTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (r *stubTransactionRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID != userID {
			continue
		}
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		matched = append(matched, txn)
	}
	return matched, nil
}

func (r *stubTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, _ uuid.UUID, _ uuid.UUID) error {
	return nil
}

type stubCategoryRepo struct {
	categories []*entity.Category
}

func (r *stubCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, cat := range r.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindVisibleByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var visible []*entity.Category
	for _, cat := range r.categories {
		if cat.Owner.IsSystem() || cat.Owner.IsUser(userID) {
			visible = append(visible, cat)
		}
	}
	return visible, nil
}

func (r *stubCategoryRepo) FindRootByKind(_ context.Context, kind entity.RootKind) (*entity.Category, error) {
	for _, cat := range r.categories {
		if cat.Kind == kind {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *stubCategoryRepo) HasChildren(_ context.Context, id uuid.UUID) (bool, error) {
	for _, cat := range r.categories {
		if cat.ParentID != nil && *cat.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, _ *entity.Category) error {
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, _ uuid.UUID, _ uuid.UUID) error {
	return nil
}

func (r *stubCategoryRepo) EnsureSystemRoots(_ context.Context) error {
	return nil
}

func day(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date
}

func TestGetSummaryUseCase(t *testing.T) {
	userID := uuid.New()
	otherUserID := uuid.New()

	incomeRoot := entity.NewSystemRoot(entity.RootKindIncome, "Income", "#22c55e", "trending-up")
	expenseRoot := entity.NewSystemRoot(entity.RootKindExpense, "Expense", "#ef4444", "trending-down")
	salary := entity.NewCategory("Salary", "#22c55e", "briefcase", incomeRoot.ID, userID)
	food := entity.NewCategory("Food", "#000000", "folder", expenseRoot.ID, userID)
	groceries := entity.NewCategory("Groceries", "#000000", "folder", food.ID, userID)

	newRepos := func() (*stubTransactionRepo, *stubCategoryRepo) {
		return &stubTransactionRepo{}, &stubCategoryRepo{
			categories: []*entity.Category{incomeRoot, expenseRoot, salary, food, groceries},
		}
	}

	addTxn := func(repo *stubTransactionRepo, owner uuid.UUID, categoryID uuid.UUID, amount string, date string) {
		repo.transactions = append(repo.transactions, entity.NewTransaction(
			owner, categoryID, decimal.RequireFromString(amount), day(date), "",
		))
	}

	t.Run("should sum amounts per classification", func(t *testing.T) {
		txnRepo, catRepo := newRepos()
		addTxn(txnRepo, userID, salary.ID, "5000", "2026-03-01")
		addTxn(txnRepo, userID, food.ID, "1000", "2026-03-10")
		addTxn(txnRepo, userID, groceries.ID, "500.50", "2026-03-15")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		output, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.NoError(t, err)
		assert.True(t, output.Summary.Income.Equal(decimal.RequireFromString("5000")))
		assert.True(t, output.Summary.Expense.Equal(decimal.RequireFromString("1500.50")))
	})

	t.Run("should classify deep descendants by their root", func(t *testing.T) {
		txnRepo, catRepo := newRepos()
		addTxn(txnRepo, userID, groceries.ID, "42", "2026-03-05")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		output, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.NoError(t, err)
		assert.True(t, output.Summary.Income.IsZero())
		assert.True(t, output.Summary.Expense.Equal(decimal.RequireFromString("42")))
	})

	t.Run("should exclude transactions outside the window", func(t *testing.T) {
		txnRepo, catRepo := newRepos()
		addTxn(txnRepo, userID, salary.ID, "5000", "2026-02-28")
		addTxn(txnRepo, userID, salary.ID, "3000", "2026-03-01")
		addTxn(txnRepo, userID, food.ID, "200", "2026-04-01")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		output, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.NoError(t, err)
		assert.True(t, output.Summary.Income.Equal(decimal.RequireFromString("3000")))
		assert.True(t, output.Summary.Expense.IsZero())
	})

	t.Run("should sum split windows to the full window totals", func(t *testing.T) {
		txnRepo, catRepo := newRepos()
		addTxn(txnRepo, userID, salary.ID, "5000", "2026-03-02")
		addTxn(txnRepo, userID, food.ID, "120.75", "2026-03-14")
		addTxn(txnRepo, userID, salary.ID, "250", "2026-03-15")
		addTxn(txnRepo, userID, groceries.ID, "80.25", "2026-03-16")
		addTxn(txnRepo, userID, food.ID, "60", "2026-03-31")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		run := func(from, to string) entity.Summary {
			output, err := useCase.Execute(context.Background(), GetSummaryInput{
				UserID: userID,
				From:   day(from),
				To:     day(to),
			})
			require.NoError(t, err)
			return output.Summary
		}

		full := run("2026-03-01", "2026-03-31")
		firstHalf := run("2026-03-01", "2026-03-15")
		secondHalf := run("2026-03-16", "2026-03-31")

		assert.True(t, full.Income.Equal(firstHalf.Income.Add(secondHalf.Income)))
		assert.True(t, full.Expense.Equal(firstHalf.Expense.Add(secondHalf.Expense)))
		assert.True(t, full.Income.Equal(decimal.RequireFromString("5250")))
		assert.True(t, full.Expense.Equal(decimal.RequireFromString("261")))
	})

	t.Run("should return zero totals for an empty window", func(t *testing.T) {
		txnRepo, catRepo := newRepos()

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		output, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.NoError(t, err)
		assert.True(t, output.Summary.Income.IsZero())
		assert.True(t, output.Summary.Expense.IsZero())
	})

	t.Run("should not include other users' transactions", func(t *testing.T) {
		txnRepo, catRepo := newRepos()
		addTxn(txnRepo, otherUserID, salary.ID, "9999", "2026-03-10")
		addTxn(txnRepo, userID, salary.ID, "100", "2026-03-10")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		output, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.NoError(t, err)
		assert.True(t, output.Summary.Income.Equal(decimal.RequireFromString("100")))
	})

	t.Run("should surface a corrupt hierarchy as an error", func(t *testing.T) {
		txnRepo := &stubTransactionRepo{}
		orphanParent := uuid.New()
		orphan := entity.NewCategory("Orphan", "#000000", "folder", orphanParent, userID)
		catRepo := &stubCategoryRepo{categories: []*entity.Category{incomeRoot, expenseRoot, orphan}}
		addTxn(txnRepo, userID, orphan.ID, "10", "2026-03-10")

		useCase := NewGetSummaryUseCase(txnRepo, catRepo)
		_, err := useCase.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			From:   day("2026-03-01"),
			To:     day("2026-03-31"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrCorruptCategoryTree)
	})
}

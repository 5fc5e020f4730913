package transaction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgertree/backend/internal/application/usecase/category"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	r.categories[cat.ID] = cat
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return cat, nil
}

func (r *fakeCategoryRepo) FindVisibleByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var visible []*entity.Category
	for _, cat := range r.categories {
		if cat.Owner.IsSystem() || cat.Owner.IsUser(userID) {
			visible = append(visible, cat)
		}
	}
	return visible, nil
}

func (r *fakeCategoryRepo) FindRootByKind(_ context.Context, kind entity.RootKind) (*entity.Category, error) {
	for _, cat := range r.categories {
		if cat.Kind == kind {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) HasChildren(_ context.Context, id uuid.UUID) (bool, error) {
	for _, cat := range r.categories {
		if cat.ParentID != nil && *cat.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, cat *entity.Category) error {
	r.categories[cat.ID] = cat
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID, _ uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) EnsureSystemRoots(_ context.Context) error {
	return nil
}

type testFixture struct {
	userID      uuid.UUID
	otherUserID uuid.UUID
	salary      *entity.Category
	food        *entity.Category
	groceries   *entity.Category
	otherCat    *entity.Category
	expenseRoot *entity.Category
	catRepo     *fakeCategoryRepo
	txnRepo     *fakeTransactionRepo
	authorizer  *category.Authorizer
}

// newFixture seeds both roots, a leaf income category, an expense branch
// with one child (so Food is not a leaf) and a category owned by someone
// else.
func newFixture() *testFixture {
	userID := uuid.New()
	otherUserID := uuid.New()

	incomeRoot := entity.NewSystemRoot(entity.RootKindIncome, "Income", "#22c55e", "trending-up")
	expenseRoot := entity.NewSystemRoot(entity.RootKindExpense, "Expense", "#ef4444", "trending-down")
	salary := entity.NewCategory("Salary", "#22c55e", "briefcase", incomeRoot.ID, userID)
	food := entity.NewCategory("Food", "#000000", "folder", expenseRoot.ID, userID)
	groceries := entity.NewCategory("Groceries", "#000000", "folder", food.ID, userID)
	otherCat := entity.NewCategory("Rent", "#000000", "folder", expenseRoot.ID, otherUserID)

	categories := map[uuid.UUID]*entity.Category{
		incomeRoot.ID:  incomeRoot,
		expenseRoot.ID: expenseRoot,
		salary.ID:      salary,
		food.ID:        food,
		groceries.ID:   groceries,
		otherCat.ID:    otherCat,
	}

	catRepo := &fakeCategoryRepo{categories: categories}
	return &testFixture{
		userID:      userID,
		otherUserID: otherUserID,
		salary:      salary,
		food:        food,
		groceries:   groceries,
		otherCat:    otherCat,
		expenseRoot: expenseRoot,
		catRepo:     catRepo,
		txnRepo:     newFakeTransactionRepo(categories),
		authorizer:  category.NewAuthorizer(catRepo),
	}
}

func (f *testFixture) createTransaction(t *testing.T, categoryID uuid.UUID, amount string, date string) *entity.Transaction {
	t.Helper()

	useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)
	output, err := useCase.Execute(context.Background(), CreateTransactionInput{
		UserID:     f.userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       mustDate(date),
	})
	require.NoError(t, err)
	return output.Transaction
}

func mustDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date
}

func transactionCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()

	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	return txnErr.Code
}

func TestCreateTransactionUseCase(t *testing.T) {
	t.Run("should create a transaction on a leaf category", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		output, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      f.userID,
			CategoryID:  f.salary.ID,
			Amount:      decimal.RequireFromString("5000"),
			Date:        mustDate("2026-03-01"),
			Description: "March salary",
		})

		require.NoError(t, err)
		assert.Equal(t, f.userID, output.Transaction.UserID)
		assert.Equal(t, f.salary.ID, output.Transaction.CategoryID)
		assert.Equal(t, "March salary", output.Transaction.Description)
		assert.Same(t, f.salary, output.Category)

		stored, err := f.txnRepo.FindByIDAndUser(context.Background(), output.Transaction.ID, f.userID)
		require.NoError(t, err)
		assert.True(t, stored.Amount.Equal(decimal.RequireFromString("5000")))
	})

	t.Run("should reject a category that has children", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: f.food.ID,
			Amount:     decimal.RequireFromString("10"),
			Date:       mustDate("2026-03-01"),
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeNonLeafCategory, transactionCode(t, err))
	})

	t.Run("should reject a system root", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: f.expenseRoot.ID,
			Amount:     decimal.RequireFromString("10"),
			Date:       mustDate("2026-03-01"),
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeNonLeafCategory, transactionCode(t, err))
	})

	t.Run("should reject another user's category", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: f.otherCat.ID,
			Amount:     decimal.RequireFromString("10"),
			Date:       mustDate("2026-03-01"),
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeCategoryNotUsable, transactionCode(t, err))
	})

	t.Run("should reject a missing category", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: uuid.New(),
			Amount:     decimal.RequireFromString("10"),
			Date:       mustDate("2026-03-01"),
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeTxnCategoryNotFound, transactionCode(t, err))
	})

	t.Run("should reject a too long description", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      f.userID,
			CategoryID:  f.salary.ID,
			Amount:      decimal.RequireFromString("10"),
			Date:        mustDate("2026-03-01"),
			Description: strings.Repeat("a", MaxDescriptionLength+1),
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeDescriptionTooLong, transactionCode(t, err))
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	t.Run("should update fields independently", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "5000", "2026-03-01")
		useCase := NewUpdateTransactionUseCase(f.txnRepo, f.authorizer)

		amount := decimal.RequireFromString("6000")
		output, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			Amount:        &amount,
		})

		require.NoError(t, err)
		assert.True(t, output.Transaction.Amount.Equal(amount))
		assert.Equal(t, txn.CategoryID, output.Transaction.CategoryID)
		assert.Equal(t, txn.Date, output.Transaction.Date)
	})

	t.Run("should check access and leafness on category reassignment", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewUpdateTransactionUseCase(f.txnRepo, f.authorizer)

		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			CategoryID:    &f.food.ID,
		})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeNonLeafCategory, transactionCode(t, err))

		_, err = useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			CategoryID:    &f.otherCat.ID,
		})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeCategoryNotUsable, transactionCode(t, err))

		output, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			CategoryID:    &f.groceries.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.groceries.ID, output.Transaction.CategoryID)
	})

	t.Run("should re-check the current category when resubmitted", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.groceries.ID, "100", "2026-03-01")

		produce := entity.NewCategory("Produce", "#000000", "folder", f.groceries.ID, f.userID)
		f.catRepo.categories[produce.ID] = produce

		useCase := NewUpdateTransactionUseCase(f.txnRepo, f.authorizer)
		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			CategoryID:    &f.groceries.ID,
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeNonLeafCategory, transactionCode(t, err))
	})

	t.Run("should not find another user's transaction", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewUpdateTransactionUseCase(f.txnRepo, f.authorizer)

		description := "mine now"
		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.otherUserID,
			Description:   &description,
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionCode(t, err))
	})

	t.Run("should reject a too long description", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewUpdateTransactionUseCase(f.txnRepo, f.authorizer)

		description := strings.Repeat("a", MaxDescriptionLength+1)
		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
			Description:   &description,
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeDescriptionTooLong, transactionCode(t, err))
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	t.Run("should delete an owned transaction", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewDeleteTransactionUseCase(f.txnRepo)

		output, err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
		})

		require.NoError(t, err)
		assert.True(t, output.Success)

		_, err = f.txnRepo.FindByIDAndUser(context.Background(), txn.ID, f.userID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("should fail on a second delete", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewDeleteTransactionUseCase(f.txnRepo)

		_, err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
		})
		require.NoError(t, err)

		_, err = useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.userID,
		})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionCode(t, err))
	})

	t.Run("should not delete another user's transaction", func(t *testing.T) {
		f := newFixture()
		txn := f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewDeleteTransactionUseCase(f.txnRepo)

		_, err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: txn.ID,
			UserID:        f.otherUserID,
		})

		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionCode(t, err))
	})
}

func TestListTransactionsUseCase(t *testing.T) {
	t.Run("should apply pagination defaults", func(t *testing.T) {
		f := newFixture()
		f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		useCase := NewListTransactionsUseCase(f.txnRepo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: f.userID,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Result.Page)
		assert.Equal(t, DefaultPageLimit, output.Result.Limit)
		assert.Equal(t, int64(1), output.Result.Total)
	})

	t.Run("should cap the requested limit", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.txnRepo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: f.userID,
			Limit:  1000,
		})

		require.NoError(t, err)
		assert.Equal(t, MaxPageLimit, output.Result.Limit)
	})

	t.Run("should return newest first with the category attached", func(t *testing.T) {
		f := newFixture()
		f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		f.createTransaction(t, f.groceries.ID, "50", "2026-03-15")
		useCase := NewListTransactionsUseCase(f.txnRepo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: f.userID,
		})

		require.NoError(t, err)
		require.Len(t, output.Result.Transactions, 2)
		assert.Equal(t, f.groceries.ID, output.Result.Transactions[0].Transaction.CategoryID)
		assert.Equal(t, "Groceries", output.Result.Transactions[0].Category.Name)
		assert.Equal(t, f.salary.ID, output.Result.Transactions[1].Transaction.CategoryID)
	})

	t.Run("should filter by date window and category", func(t *testing.T) {
		f := newFixture()
		f.createTransaction(t, f.salary.ID, "100", "2026-03-01")
		f.createTransaction(t, f.groceries.ID, "50", "2026-03-15")
		f.createTransaction(t, f.groceries.ID, "75", "2026-04-02")
		useCase := NewListTransactionsUseCase(f.txnRepo)

		from := mustDate("2026-03-01")
		to := mustDate("2026-03-31")
		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID:     f.userID,
			From:       &from,
			To:         &to,
			CategoryID: &f.groceries.ID,
		})

		require.NoError(t, err)
		require.Len(t, output.Result.Transactions, 1)
		assert.True(t, output.Result.Transactions[0].Transaction.Amount.Equal(decimal.RequireFromString("50")))
	})

	t.Run("should paginate across pages", func(t *testing.T) {
		f := newFixture()
		f.createTransaction(t, f.salary.ID, "1", "2026-03-01")
		f.createTransaction(t, f.salary.ID, "2", "2026-03-02")
		f.createTransaction(t, f.salary.ID, "3", "2026-03-03")
		useCase := NewListTransactionsUseCase(f.txnRepo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: f.userID,
			Page:   2,
			Limit:  2,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), output.Result.Total)
		assert.Equal(t, 2, output.Result.TotalPages)
		require.Len(t, output.Result.Transactions, 1)
		assert.True(t, output.Result.Transactions[0].Transaction.Amount.Equal(decimal.RequireFromString("1")))
	})
}

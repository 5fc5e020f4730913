package transaction

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory adapter.TransactionRepository used
// by the tests in this package.
type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
	categories   map[uuid.UUID]*entity.Category
}

func newFakeTransactionRepo(categories map[uuid.UUID]*entity.Category) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		categories:   categories,
	}
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) FindByIDAndUser(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.transactions[id]
	if !ok || txn.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil && txn.CategoryID != *filter.CategoryID {
			continue
		}
		matched = append(matched, txn)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	total := int64(len(matched))
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	start := (pagination.Page - 1) * pagination.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}

	rows := make([]*entity.TransactionWithCategory, 0, end-start)
	for _, txn := range matched[start:end] {
		copied := *txn
		rows = append(rows, &entity.TransactionWithCategory{
			Transaction: &copied,
			Category:    r.categories[txn.CategoryID],
		})
	}

	return &entity.TransactionListResult{
		Transactions: rows,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *fakeTransactionRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Transaction
	for _, txn := range r.transactions {
		if txn.UserID != userID {
			continue
		}
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		copied := *txn
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.transactions[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.transactions[id]
	if !ok || existing.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

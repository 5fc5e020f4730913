// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Date bounds are inclusive.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction scoped to (id, owner).
	// Returns domainerror.ErrTransactionNotFound if absent or owned by
	// another user.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first,
	// with pagination and the category attached to each row.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByUserAndDateRange retrieves all of a user's transactions whose
	// date lies in the inclusive interval [from, to]. Used by the summary
	// aggregator; no pagination.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction scoped to its owner.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped to (id, owner). Returns
	// domainerror.ErrTransactionNotFound when nothing matched.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

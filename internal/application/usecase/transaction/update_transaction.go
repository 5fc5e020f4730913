// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/application/usecase/category"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Category, amount, date and description may be reassigned independently.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Date          *time.Time
	Description   *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	authorizer      *category.Authorizer
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	authorizer *category.Authorizer,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		authorizer:      authorizer,
	}
}

// Execute performs the transaction update. Whenever the input sets a
// category, even the current one, it is re-checked with the same access
// and leaf rules as creation.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	txn, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.CategoryID != nil {
		if _, err := uc.authorizer.AuthorizeUse(ctx, *input.CategoryID, input.UserID); err != nil {
			return nil, err
		}
		if err := uc.authorizer.RequireLeaf(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		txn.CategoryID = *input.CategoryID
	}

	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: txn,
	}, nil
}

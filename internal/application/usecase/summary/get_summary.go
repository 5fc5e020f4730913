// Package summary contains reporting-related use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the income/expense summary.
// The date interval is inclusive on both ends.
type GetSummaryInput struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
}

// GetSummaryOutput represents the aggregated totals. Partitions with no
// matching transactions hold zero. Balance is derived by the caller.
type GetSummaryOutput struct {
	Summary entity.Summary
}

// GetSummaryUseCase sums a user's transaction amounts per classification
// over a date window.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the aggregation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserAndDateRange(ctx, input.UserID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindVisibleByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	index := BuildIndex(categories)

	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range transactions {
		class, err := Classify(index, txn.CategoryID)
		if err != nil {
			return nil, err
		}

		switch class {
		case entity.ClassificationIncome:
			income = income.Add(txn.Amount)
		case entity.ClassificationExpense:
			expense = expense.Add(txn.Amount)
		}
	}

	return &GetSummaryOutput{
		Summary: entity.Summary{
			Income:  income,
			Expense: expense,
		},
	}, nil
}

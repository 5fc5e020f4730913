// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Classification is the derived income/expense label of a transaction,
// determined by its category's ancestry. It is never stored.
type Classification string

const (
	ClassificationIncome  Classification = "income"
	ClassificationExpense Classification = "expense"
)

// Transaction represents a financial transaction tagged with a leaf
// category. Date carries a calendar day with no time component.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// Summary holds the aggregated totals of a date window, one partition
// per classification. Balance is derived by the caller.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

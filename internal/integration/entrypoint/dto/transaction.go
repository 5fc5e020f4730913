// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgertree/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	CategoryID  string                       `json:"category_id"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Amount      string                       `json:"amount"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction, cat *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		CategoryID:  txn.CategoryID.String(),
		Amount:      txn.Amount.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if cat != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    cat.ID.String(),
			Name:  cat.Name,
			Color: cat.Color,
			Icon:  cat.Icon,
		}
	}

	return response
}

// ToTransactionListResponse converts a TransactionListResult to TransactionListResponse.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, item := range result.Transactions {
		transactions[i] = ToTransactionResponse(item.Transaction, item.Category)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}

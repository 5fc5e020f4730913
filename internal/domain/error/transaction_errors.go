// Package error defines domain-specific errors for the LedgerTree application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist
	// or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotUsable is returned when tagging a transaction with a
	// category owned by another user.
	ErrCategoryNotUsable = errors.New("cannot use this category")

	// ErrNonLeafCategory is returned when tagging a transaction with a
	// category that has children.
	ErrNonLeafCategory = errors.New("must select a leaf category")

	// ErrDescriptionTooLong is returned when the transaction description
	// exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY, grouped like the category codes.
type TransactionErrorCode string

const (
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-020002"
	ErrCodeCategoryNotUsable        TransactionErrorCode = "TXN-030001"
	ErrCodeNonLeafCategory          TransactionErrorCode = "TXN-040001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the LedgerTree application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found or not
	// visible to the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrParentCategoryNotFound is returned when the referenced parent
	// category does not exist.
	ErrParentCategoryNotFound = errors.New("parent category not found")

	// ErrParentCategoryRequired is returned when a category is created
	// without a parent. User categories can never be roots.
	ErrParentCategoryRequired = errors.New("parent category is required")

	// ErrParentNotAccessible is returned when the parent category is owned
	// by another user.
	ErrParentNotAccessible = errors.New("cannot create category under this parent")

	// ErrSystemCategoryProtected is returned on any attempt to edit or
	// delete one of the two system roots.
	ErrSystemCategoryProtected = errors.New("cannot modify system categories")

	// ErrCategoryHasChildren is returned when deleting a category that is
	// still referenced as a parent.
	ErrCategoryHasChildren = errors.New("cannot delete category with children")

	// ErrCategoryNameTooLong is returned when the category name exceeds the
	// maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when the category color format is invalid.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrCorruptCategoryTree is returned when the stored hierarchy violates
	// the acyclicity invariant. This is a data-integrity fault, not a
	// recoverable request error.
	ErrCorruptCategoryTree = errors.New("category hierarchy is corrupted")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX groups the error class and YYYY is the
// specific error. 01 validation, 02 not found, 03 forbidden,
// 04 invalid state, 05 data integrity.
type CategoryErrorCode string

const (
	ErrCodeCategoryNameTooLong     CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat      CategoryErrorCode = "CAT-010002"
	ErrCodeParentCategoryRequired  CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields   CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-020001"
	ErrCodeParentCategoryNotFound  CategoryErrorCode = "CAT-020002"
	ErrCodeParentNotAccessible     CategoryErrorCode = "CAT-030001"
	ErrCodeSystemCategoryProtected CategoryErrorCode = "CAT-030002"
	ErrCodeCategoryHasChildren     CategoryErrorCode = "CAT-040001"
	ErrCodeCorruptCategoryTree     CategoryErrorCode = "CAT-050001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

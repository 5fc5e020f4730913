// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/application/adapter"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   *Authorizer
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, authorizer *Authorizer) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute performs the category deletion. Deleting the same id twice
// yields not-found both times; a child created concurrently makes the
// delete fail with the has-children error from the store transaction.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := uc.authorizer.AuthorizeDelete(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID, input.UserID); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		case errors.Is(err, domainerror.ErrCategoryHasChildren):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryHasChildren,
				"cannot delete category with children",
				domainerror.ErrCategoryHasChildren,
			)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}

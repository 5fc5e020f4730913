// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories: the
// forest rooted at the two system roots.
type ListCategoriesOutput struct {
	Roots []*entity.CategoryNode
}

// ListCategoriesUseCase handles listing the category tree of a user.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute fetches the categories visible to the user and assembles them
// into a forest.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindVisibleByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	roots, err := BuildForest(categories)
	if err != nil {
		return nil, err
	}

	return &ListCategoriesOutput{
		Roots: roots,
	}, nil
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// Authorizer decides whether a user may create, mutate, delete or use a
// category. All rules take the authenticated user id explicitly; there is
// no ambient request state.
type Authorizer struct {
	categoryRepo adapter.CategoryRepository
}

// NewAuthorizer creates a new Authorizer instance.
func NewAuthorizer(categoryRepo adapter.CategoryRepository) *Authorizer {
	return &Authorizer{
		categoryRepo: categoryRepo,
	}
}

// AuthorizeCreate checks that a category may be created under parentID by
// userID and returns the parent. A nil parent is always rejected: user
// categories can never be roots. The parent must exist and be either a
// system root or owned by the creating user.
func (a *Authorizer) AuthorizeCreate(ctx context.Context, parentID *uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	if parentID == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeParentCategoryRequired,
			"cannot create root categories",
			domainerror.ErrParentCategoryRequired,
		)
	}

	parent, err := a.categoryRepo.FindByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeParentCategoryNotFound,
				"parent category not found",
				domainerror.ErrParentCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find parent category: %w", err)
	}

	if !parent.Owner.IsSystem() && !parent.Owner.IsUser(userID) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeParentNotAccessible,
			"cannot create category under this parent",
			domainerror.ErrParentNotAccessible,
		)
	}

	return parent, nil
}

// AuthorizeMutate checks that categoryID may be edited or deleted by
// userID and returns the category. The two system roots are protected
// regardless of caller; anything else must be owned by the user.
func (a *Authorizer) AuthorizeMutate(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	cat, err := a.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if cat.IsRoot() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSystemCategoryProtected,
			"cannot modify system categories",
			domainerror.ErrSystemCategoryProtected,
		)
	}

	if !cat.Owner.IsUser(userID) {
		// Owner-scoped lookup: another user's category reads as missing.
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	return cat, nil
}

// AuthorizeDelete performs the mutate check and additionally rejects
// categories that still have children, regardless of who owns them.
// Deletion must proceed bottom-up.
func (a *Authorizer) AuthorizeDelete(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	cat, err := a.AuthorizeMutate(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	hasChildren, err := a.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for child categories: %w", err)
	}
	if hasChildren {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasChildren,
			"cannot delete category with children",
			domainerror.ErrCategoryHasChildren,
		)
	}

	return cat, nil
}

// AuthorizeUse checks that categoryID may be attached to a transaction by
// userID. System-owned categories are always usable; user-owned ones only
// by their owner.
func (a *Authorizer) AuthorizeUse(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*entity.Category, error) {
	cat, err := a.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !cat.Owner.IsSystem() && !cat.Owner.IsUser(userID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryNotUsable,
			"cannot use this category",
			domainerror.ErrCategoryNotUsable,
		)
	}

	return cat, nil
}

// RequireLeaf rejects categories with children. Applied on every
// transaction create or update that sets or changes the category.
func (a *Authorizer) RequireLeaf(ctx context.Context, categoryID uuid.UUID) error {
	hasChildren, err := a.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check for child categories: %w", err)
	}
	if hasChildren {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonLeafCategory,
			"must select a leaf category",
			domainerror.ErrNonLeafCategory,
		)
	}
	return nil
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newUseCase := func() (*CreateCategoryUseCase, *fakeCategoryRepo, *entity.Category) {
		repo := newFakeCategoryRepo()
		income, _ := repo.seedRoots()
		return NewCreateCategoryUseCase(repo, NewAuthorizer(repo)), repo, income
	}

	t.Run("creates a category owned by the caller", func(t *testing.T) {
		uc, repo, income := newUseCase()

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "Salary",
			ParentID: &income.ID,
			Color:    "#22c55e",
			Icon:     "briefcase",
		})
		require.NoError(t, err)

		cat := output.Category
		assert.Equal(t, "Salary", cat.Name)
		assert.Equal(t, "#22c55e", cat.Color)
		assert.True(t, cat.Owner.IsUser(userID))
		assert.Equal(t, entity.RootKindNone, cat.Kind)
		require.NotNil(t, cat.ParentID)
		assert.Equal(t, income.ID, *cat.ParentID)

		stored, err := repo.FindByID(ctx, cat.ID)
		require.NoError(t, err)
		assert.Equal(t, cat.ID, stored.ID)
	})

	t.Run("applies defaults for color and icon", func(t *testing.T) {
		uc, _, income := newUseCase()

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "Bonus",
			ParentID: &income.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultCategoryColor, output.Category.Color)
		assert.Equal(t, entity.DefaultCategoryIcon, output.Category.Icon)
	})

	t.Run("rejects a name over the maximum length", func(t *testing.T) {
		uc, _, income := newUseCase()

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     strings.Repeat("x", MaxCategoryNameLength+1),
			ParentID: &income.ID,
		})
		var catErr *domainerror.CategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, domainerror.ErrCodeCategoryNameTooLong, catErr.Code)
	})

	t.Run("rejects a malformed color", func(t *testing.T) {
		uc, _, income := newUseCase()

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "Colored",
			ParentID: &income.ID,
			Color:    "red",
		})
		var catErr *domainerror.CategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, domainerror.ErrCodeInvalidColorFormat, catErr.Code)
	})

	t.Run("accepts the short hex color form", func(t *testing.T) {
		uc, _, income := newUseCase()

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			Name:     "Short",
			ParentID: &income.ID,
			Color:    "#abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "#abc", output.Category.Color)
	})

	t.Run("rejects a missing parent", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Rootless",
		})
		var catErr *domainerror.CategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, domainerror.ErrCodeParentCategoryRequired, catErr.Code)
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeCategoryRepo()
	income, _ := repo.seedRoots()
	leaf := childOf(income, "Leaf", userID)
	repo.categories[leaf.ID] = leaf

	uc := NewDeleteCategoryUseCase(repo, NewAuthorizer(repo))

	t.Run("deletes an own leaf category", func(t *testing.T) {
		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: leaf.ID, UserID: userID})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, leaf.ID)
		assert.True(t, errors.Is(err, domainerror.ErrCategoryNotFound))
	})

	t.Run("second delete of the same id is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: leaf.ID, UserID: userID})
		var catErr *domainerror.CategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, catErr.Code)
	})
}

func TestSeedUserDefaultsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeCategoryRepo()
	income, expense := repo.seedRoots()

	uc := NewSeedUserDefaultsUseCase(repo)
	require.NoError(t, uc.Execute(ctx, userID))

	visible, err := repo.FindVisibleByUser(ctx, userID)
	require.NoError(t, err)

	var underIncome, underExpense int
	for _, cat := range visible {
		if cat.IsRoot() {
			continue
		}
		require.True(t, cat.Owner.IsUser(userID))
		switch *cat.ParentID {
		case income.ID:
			underIncome++
		case expense.ID:
			underExpense++
		}
	}
	assert.Equal(t, len(defaultIncomeCategories), underIncome)
	assert.Equal(t, len(defaultExpenseCategories), underExpense)

	// Seeded categories are invisible to other users.
	otherVisible, err := repo.FindVisibleByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Len(t, otherVisible, 2)
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
	"github.com/ledgertree/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create inserts a new category.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its id, regardless of owner.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindVisibleByUser retrieves the system roots plus the user's own categories.
func (r *categoryRepository) FindVisibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? OR owner_id IS NULL", userID).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindRootByKind retrieves the system root of the given kind.
func (r *categoryRepository) FindRootByKind(ctx context.Context, kind entity.RootKind) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("kind = ? AND owner_id IS NULL", string(kind)).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// HasChildren reports whether any category references the given id as parent.
func (r *categoryRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("parent_id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update persists changes to an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a user-owned childless category scoped to (id, owner).
// The child check and the delete run in one transaction so a concurrent
// child creation cannot orphan its row.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CategoryModel{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrCategoryHasChildren
		}

		result := tx.
			Where("id = ? AND owner_id = ? AND kind = ''", id, ownerID).
			Delete(&model.CategoryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// EnsureSystemRoots seeds the two system roots if absent. Idempotent.
func (r *categoryRepository) EnsureSystemRoots(ctx context.Context) error {
	roots := []*entity.Category{
		entity.NewSystemRoot(entity.RootKindIncome, "Income", "#22c55e", "trending-up"),
		entity.NewSystemRoot(entity.RootKindExpense, "Expense", "#ef4444", "trending-down"),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, root := range roots {
			var count int64
			if err := tx.Model(&model.CategoryModel{}).
				Where("kind = ? AND owner_id IS NULL", string(root.Kind)).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(model.CategoryFromEntity(root)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

// seedRoots creates the two system roots and returns them.
func (r *fakeCategoryRepo) seedRoots() (income, expense *entity.Category) {
	income = entity.NewSystemRoot(entity.RootKindIncome, "Income", "#22c55e", "trending-up")
	expense = entity.NewSystemRoot(entity.RootKindExpense, "Expense", "#ef4444", "trending-down")
	r.categories[income.ID] = income
	r.categories[expense.ID] = expense
	return income, expense
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cat, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return cat, nil
}

func (r *fakeCategoryRepo) FindVisibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var visible []*entity.Category
	for _, cat := range r.categories {
		if cat.Owner.IsSystem() || cat.Owner.IsUser(userID) {
			visible = append(visible, cat)
		}
	}
	return visible, nil
}

func (r *fakeCategoryRepo) FindRootByKind(ctx context.Context, kind entity.RootKind) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cat := range r.categories {
		if cat.Kind == kind {
			return cat, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cat := range r.categories {
		if cat.ParentID != nil && *cat.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cat, ok := r.categories[id]
	if !ok || !cat.Owner.IsUser(ownerID) {
		return domainerror.ErrCategoryNotFound
	}
	for _, other := range r.categories {
		if other.ParentID != nil && *other.ParentID == id {
			return domainerror.ErrCategoryHasChildren
		}
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) EnsureSystemRoots(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range []entity.RootKind{entity.RootKindIncome, entity.RootKindExpense} {
		found := false
		for _, cat := range r.categories {
			if cat.Kind == kind {
				found = true
				break
			}
		}
		if !found {
			name := "Income"
			if kind == entity.RootKindExpense {
				name = "Expense"
			}
			root := entity.NewSystemRoot(kind, name, "#000000", "folder")
			r.categories[root.ID] = root
		}
	}
	return nil
}

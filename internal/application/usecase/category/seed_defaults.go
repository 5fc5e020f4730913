// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/application/adapter"
	"github.com/ledgertree/backend/internal/domain/entity"
)

// defaultCategory describes one seeded leaf category.
type defaultCategory struct {
	name  string
	color string
	icon  string
}

// Default leaf categories created for every new user, per root.
var (
	defaultIncomeCategories = []defaultCategory{
		{name: "Salary", color: "#22c55e", icon: "briefcase"},
		{name: "Freelance", color: "#22c55e", icon: "briefcase"},
		{name: "Investments", color: "#22c55e", icon: "briefcase"},
	}

	defaultExpenseCategories = []defaultCategory{
		{name: "Food", color: "#f97316", icon: "utensils"},
		{name: "Transport", color: "#3b82f6", icon: "car"},
		{name: "Housing", color: "#8b5cf6", icon: "home"},
		{name: "Healthcare", color: "#ef4444", icon: "heart-pulse"},
		{name: "Entertainment", color: "#ec4899", icon: "gamepad-2"},
	}
)

// SeedUserDefaultsUseCase creates the standard set of leaf categories
// under each system root for a newly registered user.
type SeedUserDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedUserDefaultsUseCase creates a new SeedUserDefaultsUseCase instance.
func NewSeedUserDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedUserDefaultsUseCase {
	return &SeedUserDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories for the given user.
func (uc *SeedUserDefaultsUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if err := uc.seedUnderRoot(ctx, entity.RootKindIncome, userID, defaultIncomeCategories); err != nil {
		return err
	}
	return uc.seedUnderRoot(ctx, entity.RootKindExpense, userID, defaultExpenseCategories)
}

func (uc *SeedUserDefaultsUseCase) seedUnderRoot(ctx context.Context, kind entity.RootKind, userID uuid.UUID, defaults []defaultCategory) error {
	root, err := uc.categoryRepo.FindRootByKind(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to find %s root: %w", kind, err)
	}

	for _, def := range defaults {
		cat := entity.NewCategory(def.name, def.color, def.icon, root.ID, userID)
		if err := uc.categoryRepo.Create(ctx, cat); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", def.name, err)
		}
	}
	return nil
}

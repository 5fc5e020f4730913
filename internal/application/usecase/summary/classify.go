// Package summary contains reporting-related use cases.
package summary

import (
	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// Classify walks the parent links of a category upward until a system
// root is reached and returns that root's kind as the classification.
// The walk is total for any depth of nesting. index must contain every
// ancestor of the category; a missing parent or a walk that never
// terminates is a data-integrity fault.
func Classify(index map[uuid.UUID]*entity.Category, categoryID uuid.UUID) (entity.Classification, error) {
	current, ok := index[categoryID]
	if !ok {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	// Bounded by the index size: more steps than categories means the
	// parent graph has a cycle.
	for steps := 0; steps <= len(index); steps++ {
		if current.IsRoot() {
			switch current.Kind {
			case entity.RootKindIncome:
				return entity.ClassificationIncome, nil
			default:
				return entity.ClassificationExpense, nil
			}
		}

		if current.ParentID == nil {
			break
		}
		parent, ok := index[*current.ParentID]
		if !ok {
			break
		}
		current = parent
	}

	return "", domainerror.NewCategoryError(
		domainerror.ErrCodeCorruptCategoryTree,
		"category hierarchy is corrupted",
		domainerror.ErrCorruptCategoryTree,
	)
}

// BuildIndex builds an id-indexed lookup from a flat category list.
func BuildIndex(categories []*entity.Category) map[uuid.UUID]*entity.Category {
	index := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		index[cat.ID] = cat
	}
	return index
}

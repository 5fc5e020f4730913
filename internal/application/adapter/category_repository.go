// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its id, regardless of owner.
	// Returns domainerror.ErrCategoryNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisibleByUser retrieves the categories visible to a user: the two
	// system roots plus the user's own categories.
	FindVisibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindRootByKind retrieves the system root of the given kind.
	FindRootByKind(ctx context.Context, kind entity.RootKind) (*entity.Category, error)

	// HasChildren reports whether any category references the given id as
	// its parent, regardless of that child's owner.
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a user-owned childless category scoped to (id, owner).
	// The existence, ownership and leaf checks run in the same store
	// transaction as the delete, so a concurrent child creation makes the
	// delete lose with ErrCategoryHasChildren rather than orphaning the child.
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error

	// EnsureSystemRoots seeds the two system roots if they do not exist yet.
	// Idempotent; called once at startup.
	EnsureSystemRoots(ctx context.Context) error
}

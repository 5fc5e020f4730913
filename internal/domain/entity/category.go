// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RootKind identifies one of the two fixed system roots. User categories
// carry RootKindNone; the protected-root checks key off this attribute
// rather than well-known ids.
type RootKind string

const (
	RootKindNone    RootKind = ""
	RootKindIncome  RootKind = "income"
	RootKindExpense RootKind = "expense"
)

// Owner is who a category belongs to: the system (the two seeded roots)
// or a single user, fixed at creation.
type Owner struct {
	userID *uuid.UUID
}

// SystemOwner returns the owner value for system-seeded categories.
func SystemOwner() Owner {
	return Owner{}
}

// UserOwner returns the owner value for a category owned by the given user.
func UserOwner(userID uuid.UUID) Owner {
	return Owner{userID: &userID}
}

// IsSystem reports whether the category is system-owned.
func (o Owner) IsSystem() bool {
	return o.userID == nil
}

// UserID returns the owning user's id. The second return value is false
// for system-owned categories.
func (o Owner) UserID() (uuid.UUID, bool) {
	if o.userID == nil {
		return uuid.Nil, false
	}
	return *o.userID, true
}

// IsUser reports whether the category is owned by exactly the given user.
func (o Owner) IsUser(userID uuid.UUID) bool {
	return o.userID != nil && *o.userID == userID
}

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#000000"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "folder"

// Category represents a node of the category tree. The two system roots
// have a nil ParentID and a non-none Kind; every other category has
// exactly one parent and a user owner.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	ParentID  *uuid.UUID
	Owner     Owner
	Kind      RootKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot reports whether the category is one of the two system roots.
func (c *Category) IsRoot() bool {
	return c.Kind != RootKindNone
}

// NewCategory creates a new user-owned Category under the given parent.
// Defaulting for color and icon is an application-layer responsibility.
func NewCategory(name, color, icon string, parentID uuid.UUID, ownerID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		ParentID:  &parentID,
		Owner:     UserOwner(ownerID),
		Kind:      RootKindNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSystemRoot creates one of the two system root categories. Roots are
// seeded once at startup and never mutated afterwards.
func NewSystemRoot(kind RootKind, name, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		Owner:     SystemOwner(),
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryNode is a category together with its attached children,
// produced by the forest builder.
type CategoryNode struct {
	*Category
	Children []*CategoryNode
}

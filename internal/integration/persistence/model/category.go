// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// OwnerID is null for the two system roots; Kind is empty for every
// user-owned category.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(50);not null"`
	Color     string     `gorm:"type:varchar(7);not null"`
	Icon      string     `gorm:"type:varchar(50);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	Kind      string     `gorm:"type:varchar(10);not null;default:''"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Parent *CategoryModel `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	owner := entity.SystemOwner()
	if m.OwnerID != nil {
		owner = entity.UserOwner(*m.OwnerID)
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Icon:      m.Icon,
		ParentID:  m.ParentID,
		Owner:     owner,
		Kind:      entity.RootKind(m.Kind),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var ownerID *uuid.UUID
	if id, ok := category.Owner.UserID(); ok {
		ownerID = &id
	}

	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		ParentID:  category.ParentID,
		OwnerID:   ownerID,
		Kind:      string(category.Kind),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

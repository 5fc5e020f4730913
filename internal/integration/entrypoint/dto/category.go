// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgertree/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Color    string `json:"color,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	ParentID  *string   `json:"parent_id,omitempty"`
	OwnerType string    `json:"owner_type"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryNodeResponse represents a category with its nested children.
type CategoryNodeResponse struct {
	CategoryResponse
	Children []CategoryNodeResponse `json:"children"`
}

// CategoryTreeResponse represents the response for listing categories as
// a forest rooted at the two system roots.
type CategoryTreeResponse struct {
	Roots []CategoryNodeResponse `json:"roots"`
}

const (
	ownerTypeSystem = "system"
	ownerTypeUser   = "user"
)

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Color:     cat.Color,
		Icon:      cat.Icon,
		OwnerType: ownerTypeSystem,
		Kind:      string(cat.Kind),
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}

	if cat.ParentID != nil {
		parentIDStr := cat.ParentID.String()
		response.ParentID = &parentIDStr
	}

	if ownerID, ok := cat.Owner.UserID(); ok {
		ownerIDStr := ownerID.String()
		response.OwnerType = ownerTypeUser
		response.OwnerID = &ownerIDStr
	}

	return response
}

// ToCategoryNodeResponse converts a CategoryNode to a CategoryNodeResponse DTO.
func ToCategoryNodeResponse(node *entity.CategoryNode) CategoryNodeResponse {
	children := make([]CategoryNodeResponse, len(node.Children))
	for i, child := range node.Children {
		children[i] = ToCategoryNodeResponse(child)
	}

	return CategoryNodeResponse{
		CategoryResponse: ToCategoryResponse(node.Category),
		Children:         children,
	}
}

// ToCategoryTreeResponse converts a forest of CategoryNode to CategoryTreeResponse.
func ToCategoryTreeResponse(roots []*entity.CategoryNode) CategoryTreeResponse {
	nodes := make([]CategoryNodeResponse, len(roots))
	for i, root := range roots {
		nodes[i] = ToCategoryNodeResponse(root)
	}
	return CategoryTreeResponse{
		Roots: nodes,
	}
}

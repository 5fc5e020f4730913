// Package category contains category-related use cases.
package category

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ledgertree/backend/internal/domain/entity"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
)

// BuildForest assembles the visible categories of a user into a forest
// rooted at the two system roots. Children are attached breadth-first
// from an id-indexed arena rather than by recursion, so tree depth never
// grows the stack and a corrupted parent graph is detected instead of
// recursing forever.
//
// Children of each node are ordered by creation time, then name.
func BuildForest(categories []*entity.Category) ([]*entity.CategoryNode, error) {
	nodes := make(map[uuid.UUID]*entity.CategoryNode, len(categories))
	children := make(map[uuid.UUID][]*entity.CategoryNode)
	var roots []*entity.CategoryNode

	for _, cat := range categories {
		nodes[cat.ID] = &entity.CategoryNode{Category: cat}
	}

	for _, cat := range categories {
		node := nodes[cat.ID]
		if cat.IsRoot() {
			roots = append(roots, node)
			continue
		}
		if cat.ParentID == nil {
			// A non-root without a parent violates the creation invariant.
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCorruptCategoryTree,
				"category hierarchy is corrupted",
				domainerror.ErrCorruptCategoryTree,
			)
		}
		children[*cat.ParentID] = append(children[*cat.ParentID], node)
	}

	for _, group := range children {
		sort.Slice(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}
			return group[i].Name < group[j].Name
		})
	}

	sort.Slice(roots, func(i, j int) bool {
		return roots[i].Kind < roots[j].Kind
	})

	// Breadth-first attachment with a visited set. A revisit, or a row
	// unreachable from any root, means the stored parent graph has a cycle
	// and must be surfaced as a data-integrity fault.
	visited := make(map[uuid.UUID]bool, len(categories))
	queue := make([]*entity.CategoryNode, 0, len(categories))

	for _, root := range roots {
		visited[root.ID] = true
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		node.Children = children[node.ID]
		for _, child := range node.Children {
			if visited[child.ID] {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCorruptCategoryTree,
					"category hierarchy contains a cycle",
					domainerror.ErrCorruptCategoryTree,
				)
			}
			visited[child.ID] = true
			queue = append(queue, child)
		}
	}

	if len(visited) != len(categories) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCorruptCategoryTree,
			"category hierarchy contains unreachable categories",
			domainerror.ErrCorruptCategoryTree,
		)
	}

	return roots, nil
}

package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// ListItemsQuery represents the query to list items
type ListItemsQuery struct {
	Limit    int
	Offset   int
	Category string // Optional: filter by category
	Status   string // Optional: filter by stock status
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(query ListItemsQuery) ([]domain.Item, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var items []domain.Item
	var err error

	switch {
	case query.Category != "":
		items, err = h.repo.FindByCategory(query.Category, query.Limit, query.Offset)
	case query.Status != "":
		items, err = h.repo.FindByStatus(query.Status, query.Limit, query.Offset)
	default:
		items, err = h.repo.FindAll(query.Limit, query.Offset)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

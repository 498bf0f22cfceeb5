package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// GetItemQuery represents the query to get an item
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(query GetItemQuery) (*domain.Item, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	item, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("item not found: %w", err)
	}

	return item, nil
}

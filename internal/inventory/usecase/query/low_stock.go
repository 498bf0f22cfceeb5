package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// LowStockQuery represents the query to list items needing restock
type LowStockQuery struct {
	Limit  int
	Offset int
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns items that are low on stock or out of stock
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Item, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	low, err := h.repo.FindByStatus(domain.StatusLowStock, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	remaining := query.Limit - len(low)
	if remaining <= 0 {
		return low, nil
	}

	out, err := h.repo.FindByStatus(domain.StatusOutOfStock, remaining, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list out of stock items: %w", err)
	}

	return append(low, out...), nil
}

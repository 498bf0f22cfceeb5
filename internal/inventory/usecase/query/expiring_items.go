package query

import (
	"fmt"
	"time"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// ExpiringItemsQuery represents the query to list items expiring soon
type ExpiringItemsQuery struct {
	WithinDays int
	Limit      int
	Offset     int
}

// ExpiringItemsHandler handles expiring items query
type ExpiringItemsHandler struct {
	repo domain.ItemRepository
}

// NewExpiringItemsHandler creates a new expiring items handler
func NewExpiringItemsHandler(repo domain.ItemRepository) *ExpiringItemsHandler {
	return &ExpiringItemsHandler{repo: repo}
}

// Handle returns items whose expiry date falls within the given window
func (h *ExpiringItemsHandler) Handle(query ExpiringItemsQuery) ([]domain.Item, error) {
	if query.WithinDays <= 0 {
		query.WithinDays = 30
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	cutoff := time.Now().AddDate(0, 0, query.WithinDays)

	items, err := h.repo.FindExpiringBefore(cutoff, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring items: %w", err)
	}

	return items, nil
}

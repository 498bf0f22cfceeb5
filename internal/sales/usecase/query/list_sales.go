package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/sales/domain"
)

// ListSalesQuery represents the query to list sales
type ListSalesQuery struct {
	Limit  int
	Offset int
	ItemID uint   // Optional: filter by item
	Kind   string // Optional: filter by movement kind
}

// ListSalesHandler handles list sales query
type ListSalesHandler struct {
	repo domain.SaleRepository
}

// NewListSalesHandler creates a new list sales handler
func NewListSalesHandler(repo domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{repo: repo}
}

// Handle executes the list sales query
func (h *ListSalesHandler) Handle(query ListSalesQuery) ([]domain.Sale, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var sales []domain.Sale
	var err error

	switch {
	case query.ItemID != 0:
		sales, err = h.repo.FindByItem(query.ItemID, query.Limit, query.Offset)
	case query.Kind != "":
		if !domain.ValidKind(query.Kind) {
			return nil, fmt.Errorf("invalid kind: %s", query.Kind)
		}
		sales, err = h.repo.FindByKind(query.Kind, query.Limit, query.Offset)
	default:
		sales, err = h.repo.FindAll(query.Limit, query.Offset)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, nil
}

package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/sales/domain"
)

// GetSaleQuery represents the query to get a sale
type GetSaleQuery struct {
	ID        uint
	Reference string
}

// GetSaleHandler handles get sale query
type GetSaleHandler struct {
	repo domain.SaleRepository
}

// NewGetSaleHandler creates a new get sale handler
func NewGetSaleHandler(repo domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{repo: repo}
}

// Handle executes the get sale query, by ID or by reference
func (h *GetSaleHandler) Handle(query GetSaleQuery) (*domain.Sale, error) {
	if query.ID == 0 && query.Reference == "" {
		return nil, fmt.Errorf("id or reference is required")
	}

	var sale *domain.Sale
	var err error

	if query.ID != 0 {
		sale, err = h.repo.FindByID(query.ID)
	} else {
		sale, err = h.repo.FindByReference(query.Reference)
	}
	if err != nil {
		return nil, fmt.Errorf("sale not found: %w", err)
	}

	return sale, nil
}

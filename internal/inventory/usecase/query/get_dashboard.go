package query

import (
	"context"
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/cache"
	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
	salesdomain "github.com/aps-intertrade/farmsight/internal/sales/domain"
)

const dashboardCacheKey = "farmsight:dashboard:stats"

// GetDashboardQuery represents the query to get dashboard statistics
type GetDashboardQuery struct{}

// DashboardStats aggregates the numbers shown on the dashboard
type DashboardStats struct {
	TotalItems      int64              `json:"total_items"`
	InStockItems    int64              `json:"in_stock_items"`
	LowStockItems   int64              `json:"low_stock_items"`
	OutOfStockItems int64              `json:"out_of_stock_items"`
	StockValue      float64            `json:"stock_value"`
	SalesTotal      float64            `json:"sales_total"`
	UsageTotal      float64            `json:"usage_total"`
	RecentSales     []salesdomain.Sale `json:"recent_sales"`
}

// GetDashboardHandler handles get dashboard query
type GetDashboardHandler struct {
	items domain.ItemRepository
	sales salesdomain.SaleRepository
	cache *cache.Cache
}

// NewGetDashboardHandler creates a new get dashboard handler
func NewGetDashboardHandler(items domain.ItemRepository, sales salesdomain.SaleRepository, c *cache.Cache) *GetDashboardHandler {
	return &GetDashboardHandler{items: items, sales: sales, cache: c}
}

// Handle executes the get dashboard query
func (h *GetDashboardHandler) Handle(ctx context.Context, query GetDashboardQuery) (*DashboardStats, error) {
	var cached DashboardStats
	if h.cache.Get(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	totalItems, err := h.items.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	inStock, err := h.items.CountByStatus(domain.StatusInStock)
	if err != nil {
		return nil, fmt.Errorf("failed to count in stock items: %w", err)
	}

	lowStock, err := h.items.CountByStatus(domain.StatusLowStock)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock items: %w", err)
	}

	outOfStock, err := h.items.CountByStatus(domain.StatusOutOfStock)
	if err != nil {
		return nil, fmt.Errorf("failed to count out of stock items: %w", err)
	}

	stockValue, err := h.items.TotalStockValue()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stock value: %w", err)
	}

	salesTotal, err := h.sales.TotalByKind(salesdomain.KindSale)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sales total: %w", err)
	}

	usageTotal, err := h.sales.TotalByKind(salesdomain.KindUsage)
	if err != nil {
		return nil, fmt.Errorf("failed to compute usage total: %w", err)
	}

	recent, err := h.sales.FindRecent(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sales: %w", err)
	}

	stats := &DashboardStats{
		TotalItems:      totalItems,
		InStockItems:    inStock,
		LowStockItems:   lowStock,
		OutOfStockItems: outOfStock,
		StockValue:      stockValue,
		SalesTotal:      salesTotal,
		UsageTotal:      usageTotal,
		RecentSales:     recent,
	}

	h.cache.Set(ctx, dashboardCacheKey, stats)

	return stats, nil
}

package kafka

import "time"

// SaleRecordedEvent is emitted after a stock movement commits
type SaleRecordedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SaleID    uint      `json:"sale_id"`
	Reference string    `json:"reference"`
	ItemID    uint      `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Total     float64   `json:"total"`
	Kind      string    `json:"kind"`
	CreatedBy string    `json:"created_by"`
	Timestamp time.Time `json:"timestamp"`
}

// StockAlertEvent is emitted when a movement pushes an item to or below
// its reorder threshold
type StockAlertEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    uint      `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Threshold int       `json:"threshold"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleRecorded = "sale.recorded"
	EventTypeStockLow     = "stock.low"
	EventTypeStockOut     = "stock.out"
)

// Kafka topics
const (
	TopicSaleRecorded = "sale-recorded"
	TopicStockAlerts  = "stock-alerts"
)

package domain

import "time"

// Notification types
const (
	TypeSaleRecorded = "sale_recorded"
	TypeStockLow     = "stock_low"
	TypeStockOut     = "stock_out"
)

// Notification severities
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Notification represents an in-app notification produced from stock
// and sales events
type Notification struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Type      string    `json:"type" gorm:"not null;index"`
	Severity  string    `json:"severity" gorm:"not null;default:'info'"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	ItemID    uint      `json:"item_id" gorm:"index"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// ActivityLog represents an audit trail entry for stock movements
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Action    string    `json:"action" gorm:"not null;index"`
	Reference string    `json:"reference" gorm:"index"`
	ItemID    uint      `json:"item_id" gorm:"index"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(notification *Notification) error
	FindByID(id uint) (*Notification, error)
	FindAll(limit, offset int) ([]Notification, error)
	FindUnread(limit, offset int) ([]Notification, error)
	MarkRead(id uint) error
	MarkAllRead() (int64, error)
	Delete(id uint) error
	CountUnread() (int64, error)
}

// ActivityLogRepository defines the interface for activity log data access
type ActivityLogRepository interface {
	Create(entry *ActivityLog) error
	FindAll(limit, offset int) ([]ActivityLog, error)
	FindByItem(itemID uint, limit, offset int) ([]ActivityLog, error)
	Count() (int64, error)
}

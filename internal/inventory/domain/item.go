package domain

import (
	"time"

	"gorm.io/gorm"
)

// Stock status values derived from quantity vs reorder threshold
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Item represents an inventory item
type Item struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"uniqueIndex;not null"`
	Category   string         `json:"category" gorm:"index"`
	Quantity   int            `json:"quantity" gorm:"not null;default:0"`
	Unit       string         `json:"unit" gorm:"default:'pcs'"`
	Cost       float64        `json:"cost" gorm:"not null;default:0"`
	Price      float64        `json:"price" gorm:"not null;default:0"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	Supplier   string         `json:"supplier"`
	Threshold  int            `json:"threshold" gorm:"not null;default:0"`
	Status     string         `json:"status" gorm:"not null;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// DeriveStatus classifies a stock level against its reorder threshold.
// The status column must never be written without this rule: zero quantity
// is Out of Stock, anything up to and including the threshold is Low Stock,
// and only strictly above the threshold counts as In Stock.
func DeriveStatus(quantity, threshold int) string {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// IsExpiringBefore reports whether the item expires before the given time
func (i *Item) IsExpiringBefore(t time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(t)
}

// ItemRepository defines the contract for item data access
type ItemRepository interface {
	Create(item *Item) error
	FindByID(id uint) (*Item, error)
	FindByName(name string) (*Item, error)
	FindAll(limit, offset int) ([]Item, error)
	FindByCategory(category string, limit, offset int) ([]Item, error)
	FindByStatus(status string, limit, offset int) ([]Item, error)
	FindExpiringBefore(t time.Time, limit, offset int) ([]Item, error)
	Update(item *Item) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	TotalStockValue() (float64, error)
}

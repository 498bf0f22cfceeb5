package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Movement kinds for a recorded stock deduction
const (
	KindSale  = "sale"
	KindUsage = "usage"
)

// Sale is an immutable record of stock leaving inventory, either as a
// customer sale or internal usage. Item name and unit price are snapshotted
// at recording time so the row survives later item edits and deletes.
type Sale struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference string    `json:"reference" gorm:"uniqueIndex;not null"`
	ItemID    uint      `json:"item_id" gorm:"index;not null"`
	ItemName  string    `json:"item_name" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"not null"`
	Total     float64   `json:"total" gorm:"not null"`
	Kind      string    `json:"kind" gorm:"index;not null"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Sale) TableName() string {
	return "sales"
}

// ValidKind reports whether kind is a supported movement kind
func ValidKind(kind string) bool {
	return kind == KindSale || kind == KindUsage
}

// NewReference generates a human-readable unique reference for a movement
func NewReference(kind string) string {
	prefix := "SAL"
	if kind == KindUsage {
		prefix = "USG"
	}
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return prefix + "-" + frag
}

// SaleRepository defines the contract for sale data access
type SaleRepository interface {
	// Record atomically checks availability, inserts the sale, decrements
	// the item quantity and re-derives its status in one transaction.
	// It returns the stored sale and the updated item quantity and status.
	Record(sale *Sale) (*RecordResult, error)
	FindByID(id uint) (*Sale, error)
	FindByReference(reference string) (*Sale, error)
	FindAll(limit, offset int) ([]Sale, error)
	FindByItem(itemID uint, limit, offset int) ([]Sale, error)
	FindByKind(kind string, limit, offset int) ([]Sale, error)
	FindRecent(limit int) ([]Sale, error)
	Count() (int64, error)
	TotalByKind(kind string) (float64, error)
}

// RecordResult carries the outcome of a successful Record call
type RecordResult struct {
	Sale          *Sale  `json:"sale"`
	ItemQuantity  int    `json:"item_quantity"`
	ItemThreshold int    `json:"item_threshold"`
	ItemStatus    string `json:"item_status"`
}

// ComputeTotal calculates a line total rounded to whole cents
func ComputeTotal(quantity int, unitPrice float64) float64 {
	return math.Round(unitPrice*float64(quantity)*100) / 100
}

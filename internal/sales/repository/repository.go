package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invdomain "github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/domain"
)

// GormSaleRepository implements domain.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GORM sale repository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// AutoMigrate runs database migration for the sale model
func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{})
}

// Record inserts the sale and decrements the item stock in a single
// transaction. The item row is locked for the duration, and the
// decrement is additionally guarded so it can never drive the quantity
// negative. Either every effect commits or none do.
func (r *GormSaleRepository) Record(sale *domain.Sale) (*domain.RecordResult, error) {
	var result domain.RecordResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item invdomain.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, sale.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}

		if item.Quantity < sale.Quantity {
			return &domain.InsufficientStockError{
				ItemID:    item.ID,
				Requested: sale.Quantity,
				Available: item.Quantity,
			}
		}

		newQuantity := item.Quantity - sale.Quantity
		newStatus := invdomain.DeriveStatus(newQuantity, item.Threshold)

		// Guarded decrement. The row is already locked, but the condition
		// keeps the invariant quantity >= 0 enforced in SQL as well.
		res := tx.Model(&invdomain.Item{}).
			Where("id = ? AND quantity >= ?", item.ID, sale.Quantity).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", sale.Quantity),
				"status":     newStatus,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrConflict
		}

		// Snapshot name and price, and compute the total server side
		// from the snapshotted price.
		sale.ItemName = item.Name
		sale.UnitPrice = item.Price
		sale.Total = domain.ComputeTotal(sale.Quantity, item.Price)

		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}

		result = domain.RecordResult{
			Sale:          sale,
			ItemQuantity:  newQuantity,
			ItemThreshold: item.Threshold,
			ItemStatus:    newStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// FindByID finds a sale by ID
func (r *GormSaleRepository) FindByID(id uint) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.db.First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// FindByReference finds a sale by its reference
func (r *GormSaleRepository) FindByReference(reference string) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.db.Where("reference = ?", reference).First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// FindAll returns sales ordered newest first
func (r *GormSaleRepository) FindAll(limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sales).Error
	return sales, err
}

// FindByItem returns sales for a single item, newest first
func (r *GormSaleRepository) FindByItem(itemID uint, limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Where("item_id = ?", itemID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&sales).Error
	return sales, err
}

// FindByKind returns sales of one movement kind, newest first
func (r *GormSaleRepository) FindByKind(kind string, limit, offset int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Where("kind = ?", kind).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&sales).Error
	return sales, err
}

// FindRecent returns the most recent sales of any kind
func (r *GormSaleRepository) FindRecent(limit int) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

// Count returns the total number of sales
func (r *GormSaleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Sale{}).Count(&count).Error
	return count, err
}

// TotalByKind sums totals for one movement kind
func (r *GormSaleRepository) TotalByKind(kind string) (float64, error) {
	var total float64
	err := r.db.Model(&domain.Sale{}).
		Where("kind = ?", kind).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

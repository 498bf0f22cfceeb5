package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{}, &domain.Category{}, &domain.Supplier{})
}

func (r *GormItemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByID(id uint) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindByName(name string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormItemRepository) FindByCategory(category string, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("category = ?", category).
		Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormItemRepository) FindByStatus(status string, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("status = ?", status).
		Order("quantity ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormItemRepository) FindExpiringBefore(t time.Time, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("expiry_date IS NOT NULL AND expiry_date < ?", t).
		Order("expiry_date ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Update(item *domain.Item) error {
	return r.db.Save(item).Error
}

func (r *GormItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormItemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Item{}).Count(&count).Error
	return count, err
}

func (r *GormItemRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Item{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *GormItemRepository) TotalStockValue() (float64, error) {
	var value float64
	err := r.db.Model(&domain.Item{}).
		Select("COALESCE(SUM(quantity * cost), 0)").Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute stock value: %w", err)
	}
	return value, nil
}

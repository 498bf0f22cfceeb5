package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// AutoMigrate creates or updates the notifications table
func (r *GormNotificationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Notification{})
}

func (r *GormNotificationRepository) Create(notification *domain.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *GormNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	var notification domain.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	return &notification, nil
}

func (r *GormNotificationRepository) FindAll(limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}
	return notifications, nil
}

func (r *GormNotificationRepository) FindUnread(limit, offset int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Where("is_read = ?", false).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unread notifications: %w", err)
	}
	return notifications, nil
}

func (r *GormNotificationRepository) MarkRead(id uint) error {
	result := r.db.Model(&domain.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *GormNotificationRepository) MarkAllRead() (int64, error) {
	result := r.db.Model(&domain.Notification{}).Where("is_read = ?", false).Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Notification{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *GormNotificationRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).Where("is_read = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// GormActivityLogRepository implements ActivityLogRepository using GORM
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewGormActivityLogRepository creates a new GORM activity log repository
func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// AutoMigrate creates or updates the activity_logs table
func (r *GormActivityLogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ActivityLog{})
}

func (r *GormActivityLogRepository) Create(entry *domain.ActivityLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

func (r *GormActivityLogRepository) FindAll(limit, offset int) ([]domain.ActivityLog, error) {
	var entries []domain.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find activity logs: %w", err)
	}
	return entries, nil
}

func (r *GormActivityLogRepository) FindByItem(itemID uint, limit, offset int) ([]domain.ActivityLog, error) {
	var entries []domain.ActivityLog
	err := r.db.Where("item_id = ?", itemID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find activity logs: %w", err)
	}
	return entries, nil
}

func (r *GormActivityLogRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.ActivityLog{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count activity logs: %w", err)
	}
	return count, nil
}

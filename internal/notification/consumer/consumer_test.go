package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
	"github.com/aps-intertrade/farmsight/kafka"
)

type fakeNotificationRepository struct {
	mu            sync.Mutex
	notifications []domain.Notification
	failWith      error
}

func (r *fakeNotificationRepository) Create(notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	notification.ID = uint(len(r.notifications) + 1)
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			copied := n
			return &copied, nil
		}
	}
	return nil, errors.New("notification not found")
}

func (r *fakeNotificationRepository) FindAll(limit, offset int) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.notifications...), nil
}

func (r *fakeNotificationRepository) FindUnread(limit, offset int) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var unread []domain.Notification
	for _, n := range r.notifications {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (r *fakeNotificationRepository) MarkRead(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (r *fakeNotificationRepository) MarkAllRead() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for i := range r.notifications {
		if !r.notifications[i].IsRead {
			r.notifications[i].IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return errors.New("notification not found")
}

func (r *fakeNotificationRepository) CountUnread() (int64, error) {
	unread, _ := r.FindUnread(0, 0)
	return int64(len(unread)), nil
}

type fakeActivityLogRepository struct {
	mu      sync.Mutex
	entries []domain.ActivityLog
}

func (r *fakeActivityLogRepository) Create(entry *domain.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityLogRepository) FindAll(limit, offset int) ([]domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ActivityLog(nil), r.entries...), nil
}

func (r *fakeActivityLogRepository) FindByItem(itemID uint, limit, offset int) ([]domain.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var entries []domain.ActivityLog
	for _, entry := range r.entries {
		if entry.ItemID == itemID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *fakeActivityLogRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.entries)), nil
}

func TestHandleSaleRecorded(t *testing.T) {
	notifications := &fakeNotificationRepository{}
	activity := &fakeActivityLogRepository{}
	processor := NewEventProcessor(notifications, activity)

	payload, _ := json.Marshal(kafka.SaleRecordedEvent{
		EventID:   "evt-1",
		EventType: kafka.EventTypeSaleRecorded,
		SaleID:    7,
		Reference: "SAL-AB12CD34EF",
		ItemID:    3,
		ItemName:  "NPK Fertilizer 50kg",
		Quantity:  4,
		UnitPrice: 3.00,
		Total:     12.00,
		Kind:      "sale",
		CreatedBy: "marta",
		Timestamp: time.Now(),
	})

	if err := processor.HandleSaleRecorded(context.Background(), payload); err != nil {
		t.Fatalf("HandleSaleRecorded() error = %v", err)
	}

	entries, _ := activity.FindAll(10, 0)
	if len(entries) != 1 {
		t.Fatalf("activity entries = %d, want 1", len(entries))
	}
	if entries[0].Reference != "SAL-AB12CD34EF" || entries[0].Quantity != 4 || entries[0].Actor != "marta" {
		t.Errorf("unexpected activity entry: %+v", entries[0])
	}

	created, _ := notifications.FindAll(10, 0)
	if len(created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(created))
	}
	if created[0].Type != domain.TypeSaleRecorded || created[0].Severity != domain.SeverityInfo {
		t.Errorf("notification type/severity = %s/%s", created[0].Type, created[0].Severity)
	}
}

func TestHandleSaleRecorded_BadPayload(t *testing.T) {
	processor := NewEventProcessor(&fakeNotificationRepository{}, &fakeActivityLogRepository{})

	if err := processor.HandleSaleRecorded(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHandleStockAlert_Low(t *testing.T) {
	notifications := &fakeNotificationRepository{}
	processor := NewEventProcessor(notifications, &fakeActivityLogRepository{})

	payload, _ := json.Marshal(kafka.StockAlertEvent{
		EventID:   "evt-2",
		EventType: kafka.EventTypeStockLow,
		ItemID:    3,
		ItemName:  "NPK Fertilizer 50kg",
		Quantity:  4,
		Threshold: 5,
		Status:    "LowStock",
		Timestamp: time.Now(),
	})

	if err := processor.HandleStockAlert(context.Background(), payload); err != nil {
		t.Fatalf("HandleStockAlert() error = %v", err)
	}

	created, _ := notifications.FindAll(10, 0)
	if len(created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(created))
	}
	if created[0].Type != domain.TypeStockLow || created[0].Severity != domain.SeverityWarning {
		t.Errorf("notification type/severity = %s/%s", created[0].Type, created[0].Severity)
	}
}

func TestHandleStockAlert_Out(t *testing.T) {
	notifications := &fakeNotificationRepository{}
	processor := NewEventProcessor(notifications, &fakeActivityLogRepository{})

	payload, _ := json.Marshal(kafka.StockAlertEvent{
		EventID:   "evt-3",
		EventType: kafka.EventTypeStockOut,
		ItemID:    3,
		ItemName:  "NPK Fertilizer 50kg",
		Quantity:  0,
		Threshold: 5,
		Status:    "OutOfStock",
		Timestamp: time.Now(),
	})

	if err := processor.HandleStockAlert(context.Background(), payload); err != nil {
		t.Fatalf("HandleStockAlert() error = %v", err)
	}

	created, _ := notifications.FindAll(10, 0)
	if len(created) != 1 {
		t.Fatalf("notifications = %d, want 1", len(created))
	}
	if created[0].Type != domain.TypeStockOut || created[0].Severity != domain.SeverityCritical {
		t.Errorf("notification type/severity = %s/%s", created[0].Type, created[0].Severity)
	}
}

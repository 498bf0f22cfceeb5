package command

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

type fakeNotificationRepository struct {
	mu            sync.Mutex
	notifications map[uint]*domain.Notification
	nextID        uint
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{
		notifications: make(map[uint]*domain.Notification),
		nextID:        1,
	}
}

func (r *fakeNotificationRepository) Create(n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	copied := *n
	r.notifications[n.ID] = &copied
	return nil
}

func (r *fakeNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification not found")
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepository) FindAll(limit, offset int) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.notifications {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNotificationRepository) FindUnread(limit, offset int) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.notifications {
		if !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepository) MarkRead(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("notification not found")
	}
	n.IsRead = true
	return nil
}

func (r *fakeNotificationRepository) MarkAllRead() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, n := range r.notifications {
		if !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return fmt.Errorf("notification not found")
	}
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepository) CountUnread() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func seedNotification(t *testing.T, repo *fakeNotificationRepository, title string) uint {
	t.Helper()
	n := &domain.Notification{
		Type:     domain.TypeStockLow,
		Severity: domain.SeverityWarning,
		Title:    title,
		Message:  "stock is running low",
	}
	if err := repo.Create(n); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return n.ID
}

func TestMarkRead(t *testing.T) {
	repo := newFakeNotificationRepository()
	id := seedNotification(t, repo, "Low stock: Layer Feed 50kg")
	handler := NewMarkReadHandler(repo)

	if err := handler.Handle(MarkReadCommand{NotificationID: id}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	n, err := repo.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !n.IsRead {
		t.Error("notification not marked read")
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := newFakeNotificationRepository()
	handler := NewMarkReadHandler(repo)

	if err := handler.Handle(MarkReadCommand{NotificationID: 42}); err == nil {
		t.Error("expected error for missing notification")
	}
	if err := handler.Handle(MarkReadCommand{}); err == nil {
		t.Error("expected error for zero notification ID")
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepository()
	seedNotification(t, repo, "Low stock: Layer Feed 50kg")
	seedNotification(t, repo, "Low stock: Broiler Starter")
	readID := seedNotification(t, repo, "Sale recorded")
	if err := repo.MarkRead(readID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	handler := NewMarkAllReadHandler(repo)
	updated, err := handler.Handle()
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated != 2 {
		t.Errorf("updated = %d, want 2", updated)
	}

	unread, err := repo.CountUnread()
	if err != nil {
		t.Fatalf("CountUnread() error = %v", err)
	}
	if unread != 0 {
		t.Errorf("unread count = %d, want 0", unread)
	}
}

func TestDeleteNotification(t *testing.T) {
	repo := newFakeNotificationRepository()
	id := seedNotification(t, repo, "Out of stock: Vaccine Dose")
	handler := NewDeleteNotificationHandler(repo)

	if err := handler.Handle(DeleteNotificationCommand{NotificationID: id}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if _, err := repo.FindByID(id); err == nil {
		t.Error("expected notification to be deleted")
	}

	if err := handler.Handle(DeleteNotificationCommand{NotificationID: id}); err == nil {
		t.Error("expected error deleting missing notification")
	}
}

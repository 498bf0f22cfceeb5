package command

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// fakeItemRepository is an in-memory ItemRepository for tests
type fakeItemRepository struct {
	mu     sync.Mutex
	items  map[uint]*domain.Item
	nextID uint
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: map[uint]*domain.Item{}}
}

func (r *fakeItemRepository) Create(item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepository) FindByID(id uint) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.New("item not found")
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepository) FindByName(name string) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, errors.New("item not found")
}

func (r *fakeItemRepository) FindAll(limit, offset int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Item
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeItemRepository) FindByCategory(category string, limit, offset int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Item
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) FindByStatus(status string, limit, offset int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Item
	for _, item := range r.items {
		if item.Status == status {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) FindExpiringBefore(t time.Time, limit, offset int) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []domain.Item
	for _, item := range r.items {
		if item.IsExpiringBefore(t) {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) Update(item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.New("item not found")
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.New("item not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakeItemRepository) CountByStatus(status string) (int64, error) {
	items, _ := r.FindByStatus(status, 0, 0)
	return int64(len(items)), nil
}

func (r *fakeItemRepository) TotalStockValue() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, item := range r.items {
		total += float64(item.Quantity) * item.Cost
	}
	return total, nil
}

func TestCreateItem_StatusDerivation(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      string
	}{
		{"above threshold", 10, 5, domain.StatusInStock},
		{"at threshold", 5, 5, domain.StatusLowStock},
		{"below threshold", 3, 5, domain.StatusLowStock},
		{"zero quantity", 0, 5, domain.StatusOutOfStock},
		{"zero threshold with stock", 1, 0, domain.StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepository()
			handler := NewCreateItemHandler(repo)

			item, err := handler.Handle(CreateItemCommand{
				Name:      "NPK Fertilizer 50kg",
				Category:  "Fertilizers",
				Quantity:  tt.quantity,
				Threshold: tt.threshold,
				Cost:      2.10,
				Price:     3.00,
			})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if item.Status != tt.want {
				t.Errorf("status = %q, want %q", item.Status, tt.want)
			}
		})
	}
}

func TestCreateItem_DuplicateName(t *testing.T) {
	repo := newFakeItemRepository()
	handler := NewCreateItemHandler(repo)

	cmd := CreateItemCommand{Name: "NPK Fertilizer 50kg", Quantity: 10, Threshold: 5}
	if _, err := handler.Handle(cmd); err != nil {
		t.Fatalf("first Handle() error = %v", err)
	}
	if _, err := handler.Handle(cmd); err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestCreateItem_Validation(t *testing.T) {
	repo := newFakeItemRepository()
	handler := NewCreateItemHandler(repo)

	tests := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"missing name", CreateItemCommand{Quantity: 1}},
		{"negative quantity", CreateItemCommand{Name: "Seeds", Quantity: -1}},
		{"negative price", CreateItemCommand{Name: "Seeds", Price: -1}},
		{"negative threshold", CreateItemCommand{Name: "Seeds", Threshold: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := handler.Handle(tt.cmd); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateItem_DefaultUnit(t *testing.T) {
	repo := newFakeItemRepository()

	item, err := NewCreateItemHandler(repo).Handle(CreateItemCommand{Name: "Maize Seed", Quantity: 2})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if item.Unit != "pcs" {
		t.Errorf("unit = %q, want pcs", item.Unit)
	}
}

func TestUpdateItem_RecomputesStatus(t *testing.T) {
	repo := newFakeItemRepository()
	item, err := NewCreateItemHandler(repo).Handle(CreateItemCommand{
		Name:      "NPK Fertilizer 50kg",
		Quantity:  10,
		Threshold: 5,
	})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if item.Status != domain.StatusInStock {
		t.Fatalf("initial status = %q", item.Status)
	}

	updated, err := NewUpdateItemHandler(repo).Handle(UpdateItemCommand{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  4,
		Threshold: 5,
	})
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	if updated.Status != domain.StatusLowStock {
		t.Errorf("status after update = %q, want %q", updated.Status, domain.StatusLowStock)
	}

	updated, err = NewUpdateItemHandler(repo).Handle(UpdateItemCommand{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  0,
		Threshold: 5,
	})
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	if updated.Status != domain.StatusOutOfStock {
		t.Errorf("status after update = %q, want %q", updated.Status, domain.StatusOutOfStock)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := newFakeItemRepository()
	item, _ := NewCreateItemHandler(repo).Handle(CreateItemCommand{Name: "Maize Seed", Quantity: 2})

	if err := NewDeleteItemHandler(repo).Handle(DeleteItemCommand{ID: item.ID}); err != nil {
		t.Fatalf("delete error = %v", err)
	}

	if _, err := repo.FindByID(item.ID); err == nil {
		t.Error("expected item to be gone")
	}

	if err := NewDeleteItemHandler(repo).Handle(DeleteItemCommand{ID: 999}); err == nil {
		t.Error("expected error for missing item")
	}
}

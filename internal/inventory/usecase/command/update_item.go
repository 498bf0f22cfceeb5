package command

import (
	"fmt"
	"time"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// UpdateItemCommand represents the command to update an inventory item.
// Quantity and threshold changes always recompute the stock status in the
// same write, so the stored status can never go stale.
type UpdateItemCommand struct {
	ID         uint
	Name       string
	Category   string
	Quantity   int
	Unit       string
	Cost       float64
	Price      float64
	ExpiryDate *time.Time
	Supplier   string
	Threshold  int
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid item id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.Cost < 0 || cmd.Price < 0 {
		return nil, fmt.Errorf("cost and price cannot be negative")
	}
	if cmd.Threshold < 0 {
		return nil, fmt.Errorf("threshold cannot be negative")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("item not found")
	}

	item.Name = cmd.Name
	item.Category = cmd.Category
	item.Quantity = cmd.Quantity
	item.Unit = cmd.Unit
	item.Cost = cmd.Cost
	item.Price = cmd.Price
	item.ExpiryDate = cmd.ExpiryDate
	item.Supplier = cmd.Supplier
	item.Threshold = cmd.Threshold
	item.Status = domain.DeriveStatus(cmd.Quantity, cmd.Threshold)
	item.UpdatedAt = time.Now()

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

package command

import (
	"fmt"
	"time"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// CreateItemCommand represents the command to create an inventory item
type CreateItemCommand struct {
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

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.Item, error) {
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

	if existing, _ := h.repo.FindByName(cmd.Name); existing != nil {
		return nil, fmt.Errorf("item already exists")
	}

	if cmd.Unit == "" {
		cmd.Unit = "pcs"
	}

	item := &domain.Item{
		Name:       cmd.Name,
		Category:   cmd.Category,
		Quantity:   cmd.Quantity,
		Unit:       cmd.Unit,
		Cost:       cmd.Cost,
		Price:      cmd.Price,
		ExpiryDate: cmd.ExpiryDate,
		Supplier:   cmd.Supplier,
		Threshold:  cmd.Threshold,
		Status:     domain.DeriveStatus(cmd.Quantity, cmd.Threshold),
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

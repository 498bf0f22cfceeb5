package command

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// CreateSupplierCommand represents the command to create a supplier
type CreateSupplierCommand struct {
	Name    string
	Contact string
	Email   string
	Phone   string
	Address string
}

// CreateSupplierHandler handles create supplier command
type CreateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(repo domain.SupplierRepository) *CreateSupplierHandler {
	return &CreateSupplierHandler{repo: repo}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(cmd CreateSupplierCommand) (*domain.Supplier, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if existing, _ := h.repo.FindByName(cmd.Name); existing != nil {
		return nil, fmt.Errorf("supplier already exists")
	}

	supplier := &domain.Supplier{
		Name:    cmd.Name,
		Contact: cmd.Contact,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Address: cmd.Address,
	}

	if err := h.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return supplier, nil
}

// UpdateSupplierCommand represents the command to update a supplier
type UpdateSupplierCommand struct {
	ID      uint
	Name    string
	Contact string
	Email   string
	Phone   string
	Address string
}

// UpdateSupplierHandler handles update supplier command
type UpdateSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(repo domain.SupplierRepository) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{repo: repo}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid supplier id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	supplier, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("supplier not found")
	}

	supplier.Name = cmd.Name
	supplier.Contact = cmd.Contact
	supplier.Email = cmd.Email
	supplier.Phone = cmd.Phone
	supplier.Address = cmd.Address

	if err := h.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}

// DeleteSupplierCommand represents the command to delete a supplier
type DeleteSupplierCommand struct {
	ID uint
}

// DeleteSupplierHandler handles delete supplier command
type DeleteSupplierHandler struct {
	repo domain.SupplierRepository
}

// NewDeleteSupplierHandler creates a new delete supplier handler
func NewDeleteSupplierHandler(repo domain.SupplierRepository) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{repo: repo}
}

// Handle executes the delete supplier command
func (h *DeleteSupplierHandler) Handle(cmd DeleteSupplierCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid supplier id")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}

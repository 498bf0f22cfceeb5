package command

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an inventory item.
// Historical sales keep their own name and price snapshots, so deleting an
// item never touches recorded transactions.
type DeleteItemCommand struct {
	ID uint
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid item id")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

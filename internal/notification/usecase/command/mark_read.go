package command

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

// MarkReadCommand represents the command to mark a notification as read
type MarkReadCommand struct {
	NotificationID uint
}

// MarkReadHandler handles the mark read command
type MarkReadHandler struct {
	repo domain.NotificationRepository
}

// NewMarkReadHandler creates a new mark read handler
func NewMarkReadHandler(repo domain.NotificationRepository) *MarkReadHandler {
	return &MarkReadHandler{repo: repo}
}

// Handle executes the mark read command
func (h *MarkReadHandler) Handle(cmd MarkReadCommand) error {
	if cmd.NotificationID == 0 {
		return fmt.Errorf("notification ID is required")
	}
	return h.repo.MarkRead(cmd.NotificationID)
}

// MarkAllReadHandler marks every unread notification as read
type MarkAllReadHandler struct {
	repo domain.NotificationRepository
}

// NewMarkAllReadHandler creates a new mark all read handler
func NewMarkAllReadHandler(repo domain.NotificationRepository) *MarkAllReadHandler {
	return &MarkAllReadHandler{repo: repo}
}

// Handle executes the mark all read command and returns the number of
// notifications updated
func (h *MarkAllReadHandler) Handle() (int64, error) {
	return h.repo.MarkAllRead()
}

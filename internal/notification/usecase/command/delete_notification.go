package command

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

// DeleteNotificationCommand represents the command to delete a notification
type DeleteNotificationCommand struct {
	NotificationID uint
}

// DeleteNotificationHandler handles the delete notification command
type DeleteNotificationHandler struct {
	repo domain.NotificationRepository
}

// NewDeleteNotificationHandler creates a new delete notification handler
func NewDeleteNotificationHandler(repo domain.NotificationRepository) *DeleteNotificationHandler {
	return &DeleteNotificationHandler{repo: repo}
}

// Handle executes the delete notification command
func (h *DeleteNotificationHandler) Handle(cmd DeleteNotificationCommand) error {
	if cmd.NotificationID == 0 {
		return fmt.Errorf("notification ID is required")
	}
	if _, err := h.repo.FindByID(cmd.NotificationID); err != nil {
		return err
	}
	return h.repo.Delete(cmd.NotificationID)
}

package query

import (
	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

// ListNotificationsQuery represents the query to list notifications
type ListNotificationsQuery struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ListNotificationsResult bundles the page with the unread count
type ListNotificationsResult struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}

// ListNotificationsHandler handles the list notifications query
type ListNotificationsHandler struct {
	repo domain.NotificationRepository
}

// NewListNotificationsHandler creates a new list notifications handler
func NewListNotificationsHandler(repo domain.NotificationRepository) *ListNotificationsHandler {
	return &ListNotificationsHandler{repo: repo}
}

// Handle executes the list notifications query
func (h *ListNotificationsHandler) Handle(query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var (
		notifications []domain.Notification
		err           error
	)
	if query.UnreadOnly {
		notifications, err = h.repo.FindUnread(query.Limit, query.Offset)
	} else {
		notifications, err = h.repo.FindAll(query.Limit, query.Offset)
	}
	if err != nil {
		return nil, err
	}

	unread, err := h.repo.CountUnread()
	if err != nil {
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

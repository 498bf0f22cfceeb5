package query

import (
	"github.com/aps-intertrade/farmsight/internal/notification/domain"
)

// ListActivityQuery represents the query to list activity log entries
type ListActivityQuery struct {
	ItemID uint
	Limit  int
	Offset int
}

// ListActivityHandler handles the list activity query
type ListActivityHandler struct {
	repo domain.ActivityLogRepository
}

// NewListActivityHandler creates a new list activity handler
func NewListActivityHandler(repo domain.ActivityLogRepository) *ListActivityHandler {
	return &ListActivityHandler{repo: repo}
}

// Handle executes the list activity query
func (h *ListActivityHandler) Handle(query ListActivityQuery) ([]domain.ActivityLog, error) {
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	if query.ItemID > 0 {
		return h.repo.FindByItem(query.ItemID, query.Limit, query.Offset)
	}
	return h.repo.FindAll(query.Limit, query.Offset)
}

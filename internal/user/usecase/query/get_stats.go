package query

import (
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/user/domain"
)

// GetStatsQuery represents the query to get user statistics
type GetStatsQuery struct{}

// UserStats represents user statistics
type UserStats struct {
	TotalUsers  int64            `json:"total_users"`
	ActiveUsers int64            `json:"active_users"`
	UsersByRole map[string]int64 `json:"users_by_role"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*UserStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	byRole := make(map[string]int64)
	for _, role := range []string{
		domain.RoleAdmin,
		domain.RoleManager,
		domain.RoleStaff,
		domain.RoleStorekeeper,
	} {
		count, err := h.repo.CountByRole(role)
		if err != nil {
			return nil, fmt.Errorf("failed to count users by role: %w", err)
		}
		byRole[role] = count
	}

	// Count active users from the full listing
	users, err := h.repo.FindAll(10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var active int64
	for _, user := range users {
		if user.IsActive {
			active++
		}
	}

	return &UserStats{
		TotalUsers:  total,
		ActiveUsers: active,
		UsersByRole: byRole,
	}, nil
}

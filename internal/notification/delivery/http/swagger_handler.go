package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RegisterSwaggerDocs registers the Swagger UI endpoint
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

// ListNotificationsDoc godoc
// @Summary List notifications
// @Description Get notifications, optionally only unread ones
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotificationsDoc(w http.ResponseWriter, r *http.Request) {
	h.ListNotifications(w, r)
}

// MarkReadDoc godoc
// @Summary Mark notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkReadDoc(w http.ResponseWriter, r *http.Request) {
	h.MarkRead(w, r)
}

// ListActivityDoc godoc
// @Summary List activity log
// @Description Get the stock movement audit trail
// @Tags activity
// @Produce json
// @Param item_id query int false "Filter by item"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /api/activity [get]
func (h *NotificationHandler) ListActivityDoc(w http.ResponseWriter, r *http.Request) {
	h.ListActivity(w, r)
}

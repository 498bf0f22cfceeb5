package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aps-intertrade/farmsight/internal/notification/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/notification/usecase/query"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_service_requests_total",
			Help: "Total number of HTTP requests to notification service",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_service_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	unreadGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_service_unread_notifications",
			Help: "Current number of unread notifications",
		},
	)
)

// NotificationHandler handles HTTP requests for notifications using CQRS pattern
type NotificationHandler struct {
	markReadHandler    *command.MarkReadHandler
	markAllReadHandler *command.MarkAllReadHandler
	deleteHandler      *command.DeleteNotificationHandler

	listHandler     *query.ListNotificationsHandler
	activityHandler *query.ListActivityHandler
}

// NewNotificationHandler creates a new notification handler using dependency injection
func NewNotificationHandler(
	markReadHandler *command.MarkReadHandler,
	markAllReadHandler *command.MarkAllReadHandler,
	deleteHandler *command.DeleteNotificationHandler,
	listHandler *query.ListNotificationsHandler,
	activityHandler *query.ListActivityHandler,
) *NotificationHandler {
	return &NotificationHandler{
		markReadHandler:    markReadHandler,
		markAllReadHandler: markAllReadHandler,
		deleteHandler:      deleteHandler,
		listHandler:        listHandler,
		activityHandler:    activityHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	listQuery := query.ListNotificationsQuery{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		listQuery.Limit, _ = strconv.Atoi(limit)
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		listQuery.Offset, _ = strconv.Atoi(offset)
	}

	result, err := h.listHandler.Handle(listQuery)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list notifications")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to retrieve notifications"})
		return
	}

	unreadGauge.Set(float64(result.UnreadCount))
	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// MarkRead handles PUT /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid notification ID"})
		return
	}

	if err := h.markReadHandler.Handle(command.MarkReadCommand{NotificationID: uint(id)}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Notification marked as read"})
}

// MarkAllRead handles PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	updated, err := h.markAllReadHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to mark notifications read")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to update notifications"})
		return
	}

	unreadGauge.Set(0)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "All notifications marked as read",
		Data:    map[string]int64{"updated": updated},
	})
}

// DeleteNotification handles DELETE /api/notifications/{id}
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid notification ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteNotificationCommand{NotificationID: uint(id)}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Notification deleted"})
}

// ListActivity handles GET /api/activity
func (h *NotificationHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	activityQuery := query.ListActivityQuery{}
	if itemID := r.URL.Query().Get("item_id"); itemID != "" {
		id, err := strconv.ParseUint(itemID, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
			return
		}
		activityQuery.ItemID = uint(id)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		activityQuery.Limit, _ = strconv.Atoi(limit)
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		activityQuery.Offset, _ = strconv.Atoi(offset)
	}

	entries, err := h.activityHandler.Handle(activityQuery)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list activity")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to retrieve activity log"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}

// RegisterRoutes registers all notification routes
func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/notifications", metricsMiddleware("/api/notifications", AuthMiddleware(h.ListNotifications))).Methods("GET")
	api.HandleFunc("/notifications/read-all", metricsMiddleware("/api/notifications/read-all", AuthMiddleware(h.MarkAllRead))).Methods("PUT")
	api.HandleFunc("/notifications/{id}/read", metricsMiddleware("/api/notifications/id/read", AuthMiddleware(h.MarkRead))).Methods("PUT")
	api.HandleFunc("/notifications/{id}", metricsMiddleware("/api/notifications/id", AuthMiddleware(h.DeleteNotification))).Methods("DELETE")
	api.HandleFunc("/activity", metricsMiddleware("/api/activity", AuthMiddleware(h.ListActivity))).Methods("GET")
}

// RegisterHealthCheck registers the health check endpoint
func RegisterHealthCheck(router *mux.Router, sqlDB *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := sqlDB.PingContext(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Notification service is healthy",
		})
	}).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

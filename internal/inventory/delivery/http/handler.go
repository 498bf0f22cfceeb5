package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/inventory/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/inventory/usecase/query"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

// ItemHandler handles HTTP requests for inventory items
type ItemHandler struct {
	// Command handlers
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler

	// Query handlers
	getHandler       *query.GetItemHandler
	listHandler      *query.ListItemsHandler
	lowStockHandler  *query.LowStockHandler
	expiringHandler  *query.ExpiringItemsHandler
	dashboardHandler *query.GetDashboardHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	lowStockGauge  prometheus.Gauge
	repo           domain.ItemRepository
}

// NewItemHandler creates a new item handler
func NewItemHandler(
	createHandler *command.CreateItemHandler,
	updateHandler *command.UpdateItemHandler,
	deleteHandler *command.DeleteItemHandler,
	getHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	lowStockHandler *query.LowStockHandler,
	expiringHandler *query.ExpiringItemsHandler,
	dashboardHandler *query.GetDashboardHandler,
	repo domain.ItemRepository,
) *ItemHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	lowStockGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_low_stock_items",
			Help: "Number of items at or below their reorder threshold",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(lowStockGauge)

	return &ItemHandler{
		createHandler:    createHandler,
		updateHandler:    updateHandler,
		deleteHandler:    deleteHandler,
		getHandler:       getHandler,
		listHandler:      listHandler,
		lowStockHandler:  lowStockHandler,
		expiringHandler:  expiringHandler,
		dashboardHandler: dashboardHandler,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		lowStockGauge:    lowStockGauge,
		repo:             repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ItemHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

type itemRequest struct {
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Quantity   int        `json:"quantity"`
	Unit       string     `json:"unit"`
	Cost       float64    `json:"cost"`
	Price      float64    `json:"price"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Supplier   string     `json:"supplier"`
	Threshold  int        `json:"threshold"`
}

// CreateItem handles POST /api/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.createHandler.Handle(command.CreateItemCommand{
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Cost:       req.Cost,
		Price:      req.Price,
		ExpiryDate: req.ExpiryDate,
		Supplier:   req.Supplier,
		Threshold:  req.Threshold,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateLowStockGauge()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	item, err := h.getHandler.Handle(query.GetItemQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListItems handles GET /api/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listHandler.Handle(query.ListItemsQuery{
		Limit:    limit,
		Offset:   offset,
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// UpdateItem handles PUT /api/items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.updateHandler.Handle(command.UpdateItemCommand{
		ID:         uint(id),
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Cost:       req.Cost,
		Price:      req.Price,
		ExpiryDate: req.ExpiryDate,
		Supplier:   req.Supplier,
		Threshold:  req.Threshold,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateLowStockGauge()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: uint(id)}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// LowStock handles GET /api/items/low-stock
func (h *ItemHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.lowStockHandler.Handle(query.LowStockQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list low stock items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list low stock items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ExpiringItems handles GET /api/items/expiring
func (h *ItemHandler) ExpiringItems(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.expiringHandler.Handle(query.ExpiringItemsQuery{
		WithinDays: days,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list expiring items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list expiring items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// Dashboard handles GET /api/dashboard
func (h *ItemHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardHandler.Handle(r.Context(), query.GetDashboardQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to build dashboard")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to build dashboard",
		})
		return
	}

	h.lowStockGauge.Set(float64(stats.LowStockItems + stats.OutOfStockItems))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// updateLowStockGauge refreshes the low stock metric after writes
func (h *ItemHandler) updateLowStockGauge() {
	low, err := h.repo.CountByStatus(domain.StatusLowStock)
	if err != nil {
		return
	}
	out, err := h.repo.CountByStatus(domain.StatusOutOfStock)
	if err != nil {
		return
	}
	h.lowStockGauge.Set(float64(low + out))
}

// RegisterRoutes registers all item routes
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	write := RequireRoles("admin", "manager", "storekeeper")

	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", AuthMiddleware(h.ListItems))).Methods("GET")
	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", write(h.CreateItem))).Methods("POST")
	router.HandleFunc("/api/items/low-stock", h.metricsMiddleware("/api/items/low-stock", AuthMiddleware(h.LowStock))).Methods("GET")
	router.HandleFunc("/api/items/expiring", h.metricsMiddleware("/api/items/expiring", AuthMiddleware(h.ExpiringItems))).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", AuthMiddleware(h.GetItem))).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", write(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", RequireRoles("admin", "manager")(h.DeleteItem))).Methods("DELETE")
	router.HandleFunc("/api/dashboard", h.metricsMiddleware("/api/dashboard", AuthMiddleware(h.Dashboard))).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *ItemHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

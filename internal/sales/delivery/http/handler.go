package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aps-intertrade/farmsight/internal/sales/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/query"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

// SaleHandler handles HTTP requests for sales and usage records
type SaleHandler struct {
	recordHandler *command.RecordSaleHandler
	getHandler    *query.GetSaleHandler
	listHandler   *query.ListSalesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	oversellDenied prometheus.Counter
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(
	recordHandler *command.RecordSaleHandler,
	getHandler *query.GetSaleHandler,
	listHandler *query.ListSalesHandler,
) *SaleHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_service_requests_total",
			Help: "Total number of requests to the sales endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_service_request_duration_seconds",
			Help:    "Duration of sales requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	oversellDenied := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_service_insufficient_stock_total",
			Help: "Number of movements rejected for insufficient stock",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(oversellDenied)

	return &SaleHandler{
		recordHandler:  recordHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		oversellDenied: oversellDenied,
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
func (h *SaleHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RecordSale handles POST /api/sales
func (h *SaleHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   uint   `json:"item_id"`
		Quantity int    `json:"quantity"`
		Kind     string `json:"kind"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	createdBy, _ := r.Context().Value(UsernameKey).(string)

	result, err := h.recordHandler.Handle(r.Context(), command.RecordSaleCommand{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		Kind:      req.Kind,
		CreatedBy: createdBy,
	})
	if err != nil {
		h.respondRecordError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Movement recorded successfully",
		Data:    result,
	})
}

// respondRecordError maps recording failures onto HTTP status codes
func (h *SaleHandler) respondRecordError(w http.ResponseWriter, r *http.Request, err error) {
	var insufficient *domain.InsufficientStockError

	switch {
	case errors.As(err, &insufficient):
		h.oversellDenied.Inc()
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   insufficient.Error(),
			Data: map[string]interface{}{
				"item_id":   insufficient.ItemID,
				"requested": insufficient.Requested,
				"available": insufficient.Available,
			},
		})
	case errors.Is(err, domain.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Item not found",
		})
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidKind):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, domain.ErrConflict):
		logger.Error(r.Context()).Err(err).Msg("Movement dropped after conflict retries")
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Stock is being updated concurrently, please retry",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Failed to record movement")
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Store unavailable",
		})
	}
}

// GetSale handles GET /api/sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sale ID",
		})
		return
	}

	sale, err := h.getHandler.Handle(query.GetSaleQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Sale not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sale,
	})
}

// ListSales handles GET /api/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	itemID, _ := strconv.ParseUint(r.URL.Query().Get("item_id"), 10, 32)

	sales, err := h.listHandler.Handle(query.ListSalesQuery{
		Limit:  limit,
		Offset: offset,
		ItemID: uint(itemID),
		Kind:   r.URL.Query().Get("kind"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list sales")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list sales",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sales,
	})
}

// RegisterRoutes registers all sales routes
func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	record := RequireRoles("admin", "manager", "staff", "storekeeper")

	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", AuthMiddleware(h.ListSales))).Methods("GET")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", record(h.RecordSale))).Methods("POST")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", AuthMiddleware(h.GetSale))).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *SaleHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health/sales", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Sales recording is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

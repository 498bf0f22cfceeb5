package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/inventory/usecase/command"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

// SupplierHandler handles HTTP requests for suppliers
type SupplierHandler struct {
	createHandler *command.CreateSupplierHandler
	updateHandler *command.UpdateSupplierHandler
	deleteHandler *command.DeleteSupplierHandler
	repo          domain.SupplierRepository
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(
	createHandler *command.CreateSupplierHandler,
	updateHandler *command.UpdateSupplierHandler,
	deleteHandler *command.DeleteSupplierHandler,
	repo domain.SupplierRepository,
) *SupplierHandler {
	return &SupplierHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		repo:          repo,
	}
}

type supplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateSupplier handles POST /api/suppliers
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	supplier, err := h.createHandler.Handle(command.CreateSupplierCommand{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create supplier")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

// ListSuppliers handles GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	suppliers, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list suppliers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    suppliers,
	})
}

// GetSupplier handles GET /api/suppliers/{id}
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid supplier ID",
		})
		return
	}

	supplier, err := h.repo.FindByID(uint(id))
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Supplier not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    supplier,
	})
}

// UpdateSupplier handles PUT /api/suppliers/{id}
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid supplier ID",
		})
		return
	}

	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	supplier, err := h.updateHandler.Handle(command.UpdateSupplierCommand{
		ID:      uint(id),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update supplier")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}

// DeleteSupplier handles DELETE /api/suppliers/{id}
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid supplier ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteSupplierCommand{ID: uint(id)}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Supplier not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier deleted successfully",
	})
}

// RegisterRoutes registers all supplier routes
func (h *SupplierHandler) RegisterRoutes(router *mux.Router) {
	write := RequireRoles("admin", "manager")

	router.HandleFunc("/api/suppliers", AuthMiddleware(h.ListSuppliers)).Methods("GET")
	router.HandleFunc("/api/suppliers", write(h.CreateSupplier)).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}", AuthMiddleware(h.GetSupplier)).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}", write(h.UpdateSupplier)).Methods("PUT")
	router.HandleFunc("/api/suppliers/{id}", write(h.DeleteSupplier)).Methods("DELETE")
}

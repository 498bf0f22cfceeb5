package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateItem godoc
// @Summary Create a new inventory item
// @Description Create a new inventory item (admin, manager or storekeeper)
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,category=string,quantity=int,unit=string,cost=number,price=number,expiry_date=string,supplier=string,threshold=int} true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/items [post]
func (h *ItemHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List inventory items
// @Description Get a list of items with pagination and optional filters
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param category query string false "Category filter"
// @Param status query string false "Stock status filter"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/items [get]
func (h *ItemHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get item by ID
// @Description Get a specific inventory item by its ID
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Update an item
// @Description Update an existing item, its status is re-derived from quantity and threshold
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{name=string,category=string,quantity=int,unit=string,cost=number,price=number,expiry_date=string,supplier=string,threshold=int} true "Item data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete an item
// @Description Delete an item by ID (admin or manager)
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItemDoc() {}

// LowStock godoc
// @Summary List items needing restock
// @Description Get items that are low on stock or out of stock
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/items/low-stock [get]
func (h *ItemHandler) LowStockDoc() {}

// ExpiringItems godoc
// @Summary List expiring items
// @Description Get items whose expiry date falls within the given window
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days (default 30)"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/items/expiring [get]
func (h *ItemHandler) ExpiringItemsDoc() {}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Get aggregated inventory and movement statistics
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/dashboard [get]
func (h *ItemHandler) DashboardDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ItemHandler) HealthCheckDoc() {}

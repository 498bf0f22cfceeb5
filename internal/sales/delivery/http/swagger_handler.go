package http

// RecordSale godoc
// @Summary Record a sale or usage
// @Description Atomically check availability, record the movement and decrement stock
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{item_id=int,quantity=int,kind=string} true "Movement data, kind is sale or usage"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string,data=object{item_id=int,requested=int,available=int}}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /api/sales [post]
func (h *SaleHandler) RecordSaleDoc() {}

// ListSales godoc
// @Summary List movements
// @Description Get sales and usage records, newest first
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param item_id query int false "Item filter"
// @Param kind query string false "Movement kind filter (sale or usage)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/sales [get]
func (h *SaleHandler) ListSalesDoc() {}

// GetSale godoc
// @Summary Get movement by ID
// @Description Get a specific sale or usage record
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sales/{id} [get]
func (h *SaleHandler) GetSaleDoc() {}

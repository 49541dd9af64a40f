package handler

import (
	"github.com/gin-gonic/gin"

	cacheapp "github.com/erp/companion/internal/application/cache"
)

// SalesOrderHandler handles sales order API endpoints
type SalesOrderHandler struct {
	BaseHandler
	orderService *cacheapp.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(orderService *cacheapp.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orderService: orderService}
}

// RegisterRoutes registers sales order routes
func (h *SalesOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/sales-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

// Create creates a sales order in the local cache
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req cacheapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns all cached sales orders
func (h *SalesOrderHandler) List(c *gin.Context) {
	responses, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Get returns one cached sales order
func (h *SalesOrderHandler) Get(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	response, err := h.orderService.GetByLocalID(c.Request.Context(), localID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update edits a cached sales order
func (h *SalesOrderHandler) Update(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	var req cacheapp.UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.orderService.Update(c.Request.Context(), localID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a sales order from the local cache
func (h *SalesOrderHandler) Delete(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), localID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

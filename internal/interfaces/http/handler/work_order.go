package handler

import (
	"github.com/gin-gonic/gin"

	cacheapp "github.com/erp/companion/internal/application/cache"
)

// WorkOrderHandler handles work order API endpoints
type WorkOrderHandler struct {
	BaseHandler
	workOrderService *cacheapp.WorkOrderService
}

// NewWorkOrderHandler creates a new WorkOrderHandler
func NewWorkOrderHandler(workOrderService *cacheapp.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

// RegisterRoutes registers work order routes
func (h *WorkOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workOrders := rg.Group("/work-orders")
	{
		workOrders.POST("", h.Create)
		workOrders.GET("", h.List)
		workOrders.GET("/:id", h.Get)
		workOrders.PUT("/:id", h.Update)
		workOrders.DELETE("/:id", h.Delete)
	}
}

// Create creates a work order in the local cache
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req cacheapp.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.workOrderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns all cached work orders
func (h *WorkOrderHandler) List(c *gin.Context) {
	responses, err := h.workOrderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Get returns one cached work order
func (h *WorkOrderHandler) Get(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	response, err := h.workOrderService.GetByLocalID(c.Request.Context(), localID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update edits a cached work order
func (h *WorkOrderHandler) Update(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	var req cacheapp.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.workOrderService.Update(c.Request.Context(), localID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a work order from the local cache
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	if err := h.workOrderService.Delete(c.Request.Context(), localID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	cacheapp "github.com/erp/companion/internal/application/cache"
)

// ReferenceHandler handles the read-only customer and stock item caches
type ReferenceHandler struct {
	BaseHandler
	referenceService *cacheapp.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(referenceService *cacheapp.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// RegisterRoutes registers reference data routes
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", h.ListCustomers)
	rg.GET("/stock-items", h.ListStockItems)
}

// ListCustomers returns all cached customers
func (h *ReferenceHandler) ListCustomers(c *gin.Context) {
	responses, err := h.referenceService.ListCustomers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// ListStockItems returns all cached stock items
func (h *ReferenceHandler) ListStockItems(c *gin.Context) {
	responses, err := h.referenceService.ListStockItems(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

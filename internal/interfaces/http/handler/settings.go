package handler

import (
	"github.com/gin-gonic/gin"

	cacheapp "github.com/erp/companion/internal/application/cache"
)

// SettingsHandler handles the sync settings endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *cacheapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *cacheapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

// Get returns the current sync settings
func (h *SettingsHandler) Get(c *gin.Context) {
	response, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update changes the sync settings. Edits apply to the next sync
// invocation; a pass in flight keeps its snapshot.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req cacheapp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

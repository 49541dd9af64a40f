package handler

import (
	"github.com/gin-gonic/gin"

	syncapp "github.com/erp/companion/internal/application/sync"
)

// SyncHandler handles sync trigger and status endpoints
type SyncHandler struct {
	BaseHandler
	engine *syncapp.Engine
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(engine *syncapp.Engine) *SyncHandler {
	return &SyncHandler{engine: engine}
}

// RegisterRoutes registers sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.POST("", h.SyncAll)
		sync.POST("/push", h.Push)
		sync.POST("/pull", h.Pull)
		sync.GET("/status", h.Status)
	}
}

// SyncAll runs a full sync pass: push pending changes, then pull
func (h *SyncHandler) SyncAll(c *gin.Context) {
	summary, err := h.engine.SyncAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Push runs only the push pass
func (h *SyncHandler) Push(c *gin.Context) {
	summary, err := h.engine.PushPending(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Pull runs only the pull pass
func (h *SyncHandler) Pull(c *gin.Context) {
	summary, err := h.engine.PullRemote(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Status reports the engine state, connectivity and pending counts
func (h *SyncHandler) Status(c *gin.Context) {
	status, err := h.engine.Status(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

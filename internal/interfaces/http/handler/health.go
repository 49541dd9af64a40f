package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the local store connection is alive
type Pinger interface {
	Ping() error
}

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	BaseHandler
	store   Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store Pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// RegisterRoutes registers the health route directly on the engine, not
// under the versioned API group
func (h *HealthHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}

// Health reports service and local store health
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	storeStatus := "ok"
	code := http.StatusOK

	if err := h.store.Ping(); err != nil {
		status = "degraded"
		storeStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"store":   storeStatus,
		"version": h.version,
	})
}

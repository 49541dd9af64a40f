package handler

import (
	"github.com/gin-gonic/gin"

	cacheapp "github.com/erp/companion/internal/application/cache"
)

// QuoteHandler handles quote API endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *cacheapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *cacheapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// RegisterRoutes registers quote routes
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.Create)
		quotes.GET("", h.List)
		quotes.GET("/:id", h.Get)
		quotes.PUT("/:id", h.Update)
		quotes.DELETE("/:id", h.Delete)
	}
}

// Create creates a quote in the local cache
func (h *QuoteHandler) Create(c *gin.Context) {
	var req cacheapp.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.quoteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, response)
}

// List returns all cached quotes
func (h *QuoteHandler) List(c *gin.Context) {
	responses, err := h.quoteService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Get returns one cached quote
func (h *QuoteHandler) Get(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	response, err := h.quoteService.GetByLocalID(c.Request.Context(), localID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Update edits a cached quote
func (h *QuoteHandler) Update(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	var req cacheapp.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	response, err := h.quoteService.Update(c.Request.Context(), localID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, response)
}

// Delete removes a quote from the local cache
func (h *QuoteHandler) Delete(c *gin.Context) {
	localID, ok := bindLocalID(c)
	if !ok {
		h.BadRequest(c, "Invalid local ID")
		return
	}

	if err := h.quoteService.Delete(c.Request.Context(), localID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp/companion/internal/domain/shared"
	syncdomain "github.com/erp/companion/internal/domain/sync"
	"github.com/erp/companion/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain and sync errors to HTTP responses.
// Sync sentinels map to dedicated statuses: a pass already running is a
// conflict, a denied connectivity gate is service unavailable, and
// remote failures surface as bad gateway.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, syncdomain.ErrSyncInProgress):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeSyncInProgress), dto.ErrCodeSyncInProgress, err.Error())
		return
	case errors.Is(err, syncdomain.ErrSyncUnavailable):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeSyncUnavailable), dto.ErrCodeSyncUnavailable, err.Error())
		return
	case errors.Is(err, syncdomain.ErrNetwork), errors.Is(err, syncdomain.ErrDecode):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeRemote), dto.ErrCodeRemote, err.Error())
		return
	}

	var remoteErr *syncdomain.RemoteError
	if errors.As(err, &remoteErr) {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeRemote), dto.ErrCodeRemote, remoteErr.Error())
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, domainErr.Message)
		case errors.Is(err, shared.ErrAlreadyExists):
			h.Error(c, http.StatusConflict, dto.ErrCodeAlreadyExists, domainErr.Message)
		case errors.Is(err, shared.ErrInvalidState):
			h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState, domainErr.Message)
		default:
			h.Error(c, http.StatusBadRequest, domainErr.Code, domainErr.Message)
		}
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}

// bindLocalID extracts the numeric local ID from the :id path parameter
func bindLocalID(c *gin.Context) (uint, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		return 0, false
	}
	return req.LocalID, true
}

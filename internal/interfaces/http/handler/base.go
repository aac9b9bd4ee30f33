package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/logger"
	"github.com/tienda/backend/internal/infrastructure/telemetry"
	"github.com/tienda/backend/internal/interfaces/http/dto"
	"github.com/tienda/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Request ID lookups follow what middleware.RequestID stores
const (
	RequestIDKey    = middleware.RequestIDKey
	RequestIDHeader = middleware.RequestIDHeader
)

// msgInternal is returned when a failure carries no usable message
const msgInternal = "Error interno del servidor"

// BaseHandler provides common handler utilities
type BaseHandler struct {
	writeMetrics *telemetry.WriteMetrics
}

// SetWriteMetrics enables per-table write counters. Nil disables them.
func (h *BaseHandler) SetWriteMetrics(m *telemetry.WriteMetrics) {
	h.writeMetrics = m
}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDHeader); id != "" {
		return id
	}
	return ""
}

// Success sends a 200 response with data as the body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response with the stored row as the body
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// InvalidJSON sends a 400 response for a body that is not a JSON object
func (h *BaseHandler) InvalidJSON(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError maps an error to its response. Validation failures and bad
// identifiers are client errors; store failures and anything unexpected are
// reported as 500 with the underlying message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	reqLog := logger.GetGinLogger(c)
	requestID := getRequestID(c)
	_ = c.Error(err)

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		code := dto.CodeForValidationKind(validationErr.Kind)
		reqLog.Info("Request rejected",
			zap.String("code", code),
			zap.String("field", validationErr.Field),
			zap.String("constraint", validationErr.Constraint),
		)
		c.JSON(dto.GetHTTPStatus(code), dto.NewFieldErrorResponse(
			code, validationErr.Message, validationErr.Field, validationErr.Constraint, requestID,
		))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		reqLog.Info("Request rejected", zap.String("code", code), zap.Error(err))
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	var storeErr *shared.StoreError
	if errors.As(err, &storeErr) {
		reqLog.Error("Store operation failed",
			zap.String("op", storeErr.Op),
			zap.Error(storeErr.Err),
		)
	} else {
		reqLog.Error("Unexpected error", zap.Error(err))
	}

	message := err.Error()
	if message == "" {
		message = msgInternal
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, message, requestID))
}

// recordWrite counts the outcome of a write against table
func (h *BaseHandler) recordWrite(c *gin.Context, table string, err error) {
	ctx := c.Request.Context()
	if err == nil {
		h.writeMetrics.RecordCreated(ctx, table)
		return
	}

	code := dto.ErrCodeInternal
	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		code = dto.CodeForValidationKind(validationErr.Kind)
	}
	h.writeMetrics.RecordRejected(ctx, table, code)
}

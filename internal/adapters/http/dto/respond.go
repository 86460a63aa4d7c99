package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/delivery-cost-service/internal/domain"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/logging"
)

const (
	// ContextKeyTraceID is the gin context key checked when no span is active.
	ContextKeyTraceID = "trace_id"

	requestIDHeader = "X-Request-ID"

	internalErrorMessage = "an internal error occurred"
)

// GetTraceID returns the trace ID for the request: the active span's trace ID,
// then a trace ID stored on the gin context, then the request ID header.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if v, ok := c.Get(ContextKeyTraceID); ok {
		s, _ := v.(string)
		return s
	}

	if c.Request != nil {
		return c.Request.Header.Get(requestIDHeader)
	}

	return ""
}

// MapDomainError maps an error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	var invalid *domain.InvalidInputError

	switch {
	case err == nil:
		return http.StatusOK, nil

	case errors.As(err, &invalid):
		resp := NewErrorResponse(ErrorCodeInvalidInput, invalid.Error())
		if invalid.Field != "" {
			resp.Error.Details = map[string]string{invalid.Field: invalid.Message}
		}

		return http.StatusBadRequest, resp

	case domain.IsInvalidInput(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeInvalidInput, err.Error())

	case IsValidationError(err):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)

	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timed out")

	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeBadRequest, "malformed request")

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalErrorMessage)
	}
}

// HandleError writes the mapped error response. Internal errors are logged
// with the trace ID and never exposed to the client.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	if resp == nil {
		return
	}

	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithErrorCode aborts the handler chain with the given error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

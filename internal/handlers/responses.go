package handlers

import (
	"net/http"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is the context key holding the request's trace ID.
// It matches the key set by the RequestID middleware.
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope for every successful API response.
// Data carries the payload (a summary, a transaction, a list), Message an
// optional human-readable note, Meta pagination or counters.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse aliases the standardized error envelope so handler tests
// can decode error bodies without importing the errors package directly
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// SendError writes a client or business error (4xx) for the given code.
// Handlers use this instead of echo.NewHTTPError so every error body has
// the same shape and carries the trace ID.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError writes a generic SYSTEM_001 response for an internal
// failure. The original error never reaches the client; callers log it or
// let the error handler middleware do so.
func SendSystemError(c echo.Context, err error) error {
	response, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, response)
}

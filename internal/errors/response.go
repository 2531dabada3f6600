package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON envelope every failed request returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code, a human-readable message,
// optional per-field details and the trace ID of the failing request.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes an ErrorResponse at construction time.
type ErrorOption func(*ErrorResponse)

// WithDetails sets the detail lines of the response.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds a response for the given code and trace ID,
// applying any options on top of the code's default message.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError builds a VALIDATION_001 response whose details list
// one "field: message" line per failed field.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// WrapSystemError hides an internal error behind the generic system code.
// The original error comes back alongside the response so the caller can
// log it server-side without leaking it to the client.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError does the same for database failures.
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the response.
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// httpStatusByCode maps every known error code to its HTTP status.
// Codes missing from the table fall through to 500.
var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:        http.StatusBadRequest,
	ValidationRequiredField:  http.StatusBadRequest,
	ValidationInvalidFormat:  http.StatusBadRequest,
	ValidationOutOfRange:     http.StatusBadRequest,
	ValidationInvalidDate:    http.StatusBadRequest,
	TransactionInvalidAmount: http.StatusBadRequest,
	TransactionInvalidType:   http.StatusBadRequest,
	TransactionInvalidID:     http.StatusBadRequest,
	CategoryInvalidID:        http.StatusBadRequest,
	SubscriptionInvalidID:    http.StatusBadRequest,

	TransactionNotFound:  http.StatusNotFound,
	CategoryNotFound:     http.StatusNotFound,
	SubscriptionNotFound: http.StatusNotFound,

	CategoryAlreadyExists: http.StatusConflict,
	CategoryInUse:         http.StatusConflict,

	SubscriptionInvalidBillingDay: http.StatusUnprocessableEntity,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,

	StatsAggregationFailed:   http.StatusInternalServerError,
	StatsMalformedPeriod:     http.StatusInternalServerError,
	SystemInternalError:      http.StatusInternalServerError,
	SystemDatabaseError:      http.StatusInternalServerError,
	SystemConfigurationError: http.StatusInternalServerError,
	SystemUnexpectedError:    http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status associated with an error code.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status for this response's code.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError reports whether the response maps to a 4xx status.
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError reports whether the response maps to a 5xx status.
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}

package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx analytics API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes an ErrorResponse
type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalogue message for the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithFieldErrors renders "field: message" details sorted by field name
func WithFieldErrors(fieldErrors map[string]string) ErrorOption {
	return func(er *ErrorResponse) {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		details := make([]string, 0, len(fields))
		for _, field := range fields {
			details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
		}
		er.Error.Details = details
	}
}

// NewErrorResponse builds the response for code with its catalogue message
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

// NewValidationError reports one detail per invalid query or body field
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithFieldErrors(fieldErrors))
}

// WrapSystemError hides err behind a generic system code. Timeouts map to
// SYSTEM_003 and closed database handles to SYSTEM_002; everything else is SYSTEM_001.
// err is returned unchanged for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(classifySystemError(err), traceID), err
}

func classifySystemError(err error) ErrorCode {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return SystemServiceUnavailable
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, sql.ErrTxDone):
		return SystemDatabaseError
	default:
		return SystemInternalError
	}
}

// GetHTTPStatus returns the HTTP status for code. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		AnalyticsInvalidGranularity, AnalyticsInvalidHorizon,
		AnalyticsInvalidSeriesKind, AnalyticsInvalidScope:
		return http.StatusBadRequest
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError reports whether the response maps to a 5xx status
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}

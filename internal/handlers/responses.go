package handlers

import (
	"log/slog"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError (client mistakes, 4xx) and
// SendSystemError (everything else). Neither returns the error to echo, so the
// response body is always the errors.ErrorResponse envelope and internal error
// text never reaches the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic system error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("analytics request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"query", c.QueryString(),
		"client_ip", c.RealIP(),
		"error_code", errorResponse.Error.Code,
		"error", internalErr,
	)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

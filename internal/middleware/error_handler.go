package middleware

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"finance-dashboard/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analytics_api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders every error that reaches echo as an
// errors.ErrorResponse: router errors keep their status, validator failures
// become VALIDATION_001 with one detail per field, and anything else is hidden
// behind a system code.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, status := buildErrorResponse(err, traceID)

	level := slog.LevelWarn
	if errorResponse.IsServerError() || status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, errorResponse); sendErr != nil {
		slog.Error("failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if goerrors.As(err, &httpErr) {
		return errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", httpErr.Message)),
		), httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if goerrors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = formatValidationError(fe)
		}
		return errors.NewValidationError(details, traceID), http.StatusBadRequest
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed,
		http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusRequestEntityTooLarge:
		return errors.ValidationOutOfRange
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError phrases a failed rule for the details list
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "numeric":
		return "must be a whole number"
	case "granularity":
		return "must be one of day, month, year"
	case "series_kind":
		return "must be one of expense, income, net"
	case "anomaly_scope":
		return "must be category or global"
	case "transaction_type":
		return "must be a valid transaction type (Income, Expense, Transfer)"
	case "calendar_date":
		return "must be a recognized date"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

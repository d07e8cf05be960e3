package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatError turns validator.ValidationErrors into a single readable message.
// Other errors pass through unchanged.
func FormatError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "granularity":
		return fmt.Sprintf("%s must be one of day, month, year", field)
	case "series_kind":
		return fmt.Sprintf("%s must be one of expense, income, net", field)
	case "anomaly_scope":
		return fmt.Sprintf("%s must be category or global", field)
	case "transaction_type":
		return fmt.Sprintf("%s must be Income, Expense or Transfer", field)
	case "calendar_date":
		return fmt.Sprintf("%s is not a recognized date", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

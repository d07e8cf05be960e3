package validation

import (
	"reflect"
	"strings"
	"sync"

	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("granularity", validateGranularity)
	_ = v.RegisterValidation("series_kind", validateSeriesKind)
	_ = v.RegisterValidation("anomaly_scope", validateAnomalyScope)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and flattens the first failure into a readable error
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return FormatError(err)
	}
	return nil
}

// Custom validation functions

// validateGranularity accepts day, month and year
func validateGranularity(fl validator.FieldLevel) bool {
	return models.Granularity(fl.Field().String()).IsValid()
}

// validateSeriesKind accepts expense, income and net
func validateSeriesKind(fl validator.FieldLevel) bool {
	return models.SeriesKind(fl.Field().String()).IsValid()
}

// validateAnomalyScope accepts category and global
func validateAnomalyScope(fl validator.FieldLevel) bool {
	return models.AnomalyScope(fl.Field().String()).IsValid()
}

// validateTransactionType validates that transaction type is one of the stored types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateCalendarDate accepts any layout the transaction store accepts
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, ok := models.ParseDate(fl.Field().String())
	return ok
}

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

// Budget is a monthly spending limit for one category, owned by the preferences store
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category     string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_limit"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return errors.New("budget category is required")
	}
	if !b.MonthlyLimit.IsPositive() {
		return ErrInvalidBudgetLimit
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetLimits indexes budgets by category
func BudgetLimits(budgets []Budget) map[string]decimal.Decimal {
	limits := make(map[string]decimal.Decimal, len(budgets))
	for i := range budgets {
		limits[budgets[i].Category] = budgets[i].MonthlyLimit
	}
	return limits
}

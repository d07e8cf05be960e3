package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "Income"
	TransactionTypeExpense  = "Expense"
	TransactionTypeTransfer = "Transfer"

	// InPocketCategory marks internal cash reallocation between the user's own pockets.
	// Such rows never count as income or expense.
	InPocketCategory = "In-pocket"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
)

// dateLayouts are tried in order when parsing a transaction date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006/01/02",
}

// Transaction is a single ledger row as handed over by the ingestion pipeline.
// Date is kept as the raw string the pipeline produced; use ParseDate to read it.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date        string          `gorm:"type:varchar(32);index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Category    string          `gorm:"type:varchar(100);index" json:"category"`
	Subcategory string          `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	Account     string          `gorm:"type:varchar(100);index" json:"account"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields. Dates are deliberately not validated:
// analytics skip rows with unparsable dates instead of rejecting them.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if len(t.Category) > 100 {
		return errors.New("category too long")
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// ParseDate returns the calendar date of the transaction at UTC midnight.
// ok is false when the stored date is empty or in no known layout.
func (t *Transaction) ParseDate() (time.Time, bool) {
	return ParseDate(t.Date)
}

// IsInPocket reports whether the transaction only moves money between the user's own pockets
func (t *Transaction) IsInPocket() bool {
	return t.Category == InPocketCategory
}

// IsIncome returns true for income rows that count towards totals
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome && !t.IsInPocket()
}

// IsExpense returns true for expense rows that count towards totals
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense && !t.IsInPocket()
}

// ParseDate parses a raw date string in any of the accepted layouts
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

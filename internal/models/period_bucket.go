package models

import (
	"github.com/shopspring/decimal"
)

// Granularity is the calendar unit periods are bucketed by
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// IsValid reports whether g is a supported granularity
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityMonth, GranularityYear:
		return true
	default:
		return false
	}
}

// SeriesKind selects which total of a PeriodBucket forms a time series
type SeriesKind string

const (
	SeriesExpense SeriesKind = "expense"
	SeriesIncome  SeriesKind = "income"
	SeriesNet     SeriesKind = "net"
)

// IsValid reports whether k is a supported series kind
func (k SeriesKind) IsValid() bool {
	switch k {
	case SeriesExpense, SeriesIncome, SeriesNet:
		return true
	default:
		return false
	}
}

// PeriodBucket holds the totals of one calendar period
type PeriodBucket struct {
	PeriodKey        string          `json:"period_key"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int64           `json:"transaction_count"`
}

// Value returns the bucket total selected by kind
func (b PeriodBucket) Value(kind SeriesKind) decimal.Decimal {
	switch kind {
	case SeriesIncome:
		return b.Income
	case SeriesNet:
		return b.Net
	default:
		return b.Expense
	}
}

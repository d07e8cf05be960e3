package models

import (
	"github.com/shopspring/decimal"
)

// RecurringPattern is a cluster of transactions that repeat on a regular cadence
type RecurringPattern struct {
	Key           string          `json:"key"`
	Category      string          `json:"category"`
	Account       string          `json:"account"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	FrequencyDays decimal.Decimal `json:"frequency_days"`
	IsMonthly     bool            `json:"is_monthly"`
	Occurrences   int             `json:"occurrences"`
	NextExpected  string          `json:"next_expected"`
	Confidence    decimal.Decimal `json:"confidence"`
}

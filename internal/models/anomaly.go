package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Severity is the coarse tier of an anomaly
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities from most to least extreme
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// AnomalyScope selects the population a transaction is compared against
type AnomalyScope string

const (
	AnomalyScopeCategory AnomalyScope = "category"
	AnomalyScopeGlobal   AnomalyScope = "global"
)

// IsValid reports whether s is a supported scope
func (s AnomalyScope) IsValid() bool {
	return s == AnomalyScopeCategory || s == AnomalyScopeGlobal
}

// Anomaly is a transaction whose amount is far from its rolling baseline
type Anomaly struct {
	TransactionID  uuid.UUID       `json:"transaction_id"`
	Date           string          `json:"date"`
	Category       string          `json:"category"`
	Account        string          `json:"account"`
	Amount         decimal.Decimal `json:"amount"`
	BaselineMean   decimal.Decimal `json:"baseline_mean"`
	DeviationSigma decimal.Decimal `json:"deviation_sigma"`
	Severity       Severity        `json:"severity"`
}

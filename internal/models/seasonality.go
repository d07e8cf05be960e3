package models

import (
	"github.com/shopspring/decimal"
)

const (
	SeasonalityConfidenceHigh = "high"
	SeasonalityConfidenceLow  = "low"
)

// SeasonalityResult describes the repeating yearly shape of a monthly series.
// An index above 1 means that calendar month runs above average.
type SeasonalityResult struct {
	HasSeasonality bool                    `json:"has_seasonality"`
	Indices        map[int]decimal.Decimal `json:"indices"`
	Strength       decimal.Decimal         `json:"strength"`
	PeakMonth      int                     `json:"peak_month,omitempty"`
	LowMonth       int                     `json:"low_month,omitempty"`
	Years          int                     `json:"years"`
	Confidence     string                  `json:"confidence"`
}

package dto

import (
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Analytics Request DTOs

// AnalyticsFilters narrows the transactions an analytics endpoint looks at
type AnalyticsFilters struct {
	StartDate string `query:"startDate" validate:"omitempty,calendar_date"`
	EndDate   string `query:"endDate" validate:"omitempty,calendar_date"`
	Account   string `query:"account" validate:"omitempty,max=100"`
	Category  string `query:"category" validate:"omitempty,max=100"`
	Type      string `query:"type" validate:"omitempty,transaction_type"`
}

// PeriodsQuery is the query string of GET /analytics/periods
type PeriodsQuery struct {
	AnalyticsFilters
	Granularity string `query:"granularity" validate:"granularity"`
}

// ForecastQuery is the query string of GET /analytics/forecast
type ForecastQuery struct {
	AnalyticsFilters
	Series  string `query:"series" validate:"series_kind"`
	Horizon string `query:"horizon" validate:"omitempty,numeric"`
}

// SeasonalityQuery is the query string of GET /analytics/seasonality
type SeasonalityQuery struct {
	AnalyticsFilters
	Series string `query:"series" validate:"series_kind"`
}

// AnomaliesQuery is the query string of GET /analytics/anomalies
type AnomaliesQuery struct {
	AnalyticsFilters
	Scope string `query:"scope" validate:"anomaly_scope"`
}

// ForecastSeriesRequest is the body of POST /analytics/forecast.
// A missing horizon falls back to the configured default.
type ForecastSeriesRequest struct {
	Series  []decimal.Decimal `json:"series" validate:"max=1200"`
	Horizon *int              `json:"horizon" validate:"omitempty,max=120"`
}

// MaxForecastHorizon is the largest horizon any forecast request may ask for
const MaxForecastHorizon = 120

// Analytics Response DTOs

// PeriodsResponse lists period buckets in chronological order
type PeriodsResponse struct {
	Granularity models.Granularity    `json:"granularity"`
	Periods     []models.PeriodBucket `json:"periods"`
}

// ForecastResponse wraps a forecast summary with the request that produced it
type ForecastResponse struct {
	Series  models.SeriesKind       `json:"series,omitempty"`
	Horizon int                     `json:"horizon"`
	Summary *models.ForecastSummary `json:"summary"`
}

// SeasonalityResponse wraps a seasonality result
type SeasonalityResponse struct {
	Series models.SeriesKind         `json:"series"`
	Result *models.SeasonalityResult `json:"result"`
}

// AnomaliesResponse lists flagged transactions, most severe first
type AnomaliesResponse struct {
	Scope     models.AnomalyScope `json:"scope"`
	Anomalies []models.Anomaly    `json:"anomalies"`
	Total     int                 `json:"total"`
}

// RecurringResponse lists recurring patterns with their monthly commitments
type RecurringResponse struct {
	Patterns       []models.RecurringPattern `json:"patterns"`
	MonthlyExpense decimal.Decimal           `json:"monthly_expense"`
	MonthlyIncome  decimal.Decimal           `json:"monthly_income"`
	MonthlyCount   int                       `json:"monthly_count"`
}

// InsightsResponse is the ranked insight report
type InsightsResponse struct {
	*models.InsightReport
	Total int `json:"total"`
}

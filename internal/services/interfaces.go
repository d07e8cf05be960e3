package services

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// PeriodAggregatorInterface buckets transactions into calendar periods
type PeriodAggregatorInterface interface {
	Aggregate(transactions []models.Transaction, granularity models.Granularity, dateRange *models.DateRange) ([]models.PeriodBucket, error)
}

// ForecastServiceInterface projects a series of period totals forward
type ForecastServiceInterface interface {
	Forecast(series []decimal.Decimal, horizon int) (*models.ForecastSummary, error)
}

// SeasonalityServiceInterface detects a repeating yearly shape in monthly totals
type SeasonalityServiceInterface interface {
	// DetectSeasonality takes period values keyed by YYYY-MM
	DetectSeasonality(periodValues map[string]decimal.Decimal) models.SeasonalityResult
}

// AnomalyServiceInterface flags expenses far from their rolling baseline
type AnomalyServiceInterface interface {
	DetectAnomalies(transactions []models.Transaction, scope models.AnomalyScope) ([]models.Anomaly, error)
}

// RecurringServiceInterface finds transactions that repeat on a regular cadence
type RecurringServiceInterface interface {
	DetectRecurring(transactions []models.Transaction) []models.RecurringPattern
}

// InsightServiceInterface turns detector output into ranked, human-facing insights
type InsightServiceInterface interface {
	Synthesize(transactions []models.Transaction, budgets map[string]decimal.Decimal) *models.InsightReport
}

// AnalyticsServiceInterface loads data from the store, runs the engine and memoizes results
type AnalyticsServiceInterface interface {
	Aggregate(filters models.TransactionFilters, granularity models.Granularity) ([]models.PeriodBucket, error)
	Forecast(filters models.TransactionFilters, kind models.SeriesKind, horizon int) (*models.ForecastSummary, error)
	ForecastSeries(series []decimal.Decimal, horizon int) (*models.ForecastSummary, error)
	Seasonality(filters models.TransactionFilters, kind models.SeriesKind) (*models.SeasonalityResult, error)
	Anomalies(filters models.TransactionFilters, scope models.AnomalyScope) ([]models.Anomaly, error)
	Recurring(filters models.TransactionFilters) ([]models.RecurringPattern, error)
	Insights(filters models.TransactionFilters) (*models.InsightReport, error)
}

// HistoryGeneratorInterface produces a deterministic synthetic transaction history
type HistoryGeneratorInterface interface {
	GenerateHistory(startDate, endDate time.Time) []models.Transaction
	GenerateBudgets() []models.Budget
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

package models

import (
	"github.com/shopspring/decimal"
)

// ForecastMethod names a forecasting strategy
type ForecastMethod string

const (
	ForecastMethodSimple      ForecastMethod = "simple"
	ForecastMethodExponential ForecastMethod = "exponential"
	ForecastMethodRegression  ForecastMethod = "regression"
	ForecastMethodBest        ForecastMethod = "best"
)

// VolatilityLevel buckets the coefficient of variation of a series
type VolatilityLevel string

const (
	VolatilityLow    VolatilityLevel = "low"
	VolatilityMedium VolatilityLevel = "medium"
	VolatilityHigh   VolatilityLevel = "high"
)

// TrendDirection summarizes the fitted regression line
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// ConfidenceBand holds per-step bounds around a forecast
type ConfidenceBand struct {
	Upper []decimal.Decimal `json:"upper"`
	Lower []decimal.Decimal `json:"lower"`
}

// Volatility describes how noisy a series is
type Volatility struct {
	Level                  VolatilityLevel `json:"level"`
	CoefficientOfVariation decimal.Decimal `json:"coefficient_of_variation"`
}

// DataQuality describes how well a straight line explains the series
type DataQuality struct {
	R2 decimal.Decimal `json:"r2"`
}

// ForecastResult is the output of one forecasting method
type ForecastResult struct {
	Method       ForecastMethod    `json:"method"`
	Forecast     []decimal.Decimal `json:"forecast"`
	Confidence   *ConfidenceBand   `json:"confidence"`
	Volatility   Volatility        `json:"volatility"`
	DataQuality  DataQuality       `json:"data_quality"`
	OutlierCount int               `json:"outlier_count"`
}

// ForecastSummary bundles every method so callers can switch views without recomputing
type ForecastSummary struct {
	Simple         ForecastResult  `json:"simple"`
	Exponential    ForecastResult  `json:"exponential"`
	Regression     ForecastResult  `json:"regression"`
	Best           ForecastResult  `json:"best"`
	SelectedMethod ForecastMethod  `json:"selected_method"`
	Volatility     Volatility      `json:"volatility"`
	DataQuality    DataQuality     `json:"data_quality"`
	Outliers       int             `json:"outliers"`
	Slope          decimal.Decimal `json:"slope"`
	Trend          TrendDirection  `json:"trend"`
}

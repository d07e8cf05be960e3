package services

import "finance-dashboard/internal/config"

// AnalyticsOptions holds every threshold the analytics engine uses.
// The values are part of the observable behaviour: changing one changes which
// anomalies, patterns and insights are reported, so defaults must stay stable.
type AnalyticsOptions struct {
	Forecast    ForecastOptions
	Seasonality SeasonalityOptions
	Anomaly     AnomalyOptions
	Recurring   RecurringOptions
	Insight     InsightOptions
}

// ForecastOptions configures the forecasting engine
type ForecastOptions struct {
	SmoothingAlpha     float64
	OutlierSigma       float64
	ConfidenceZ        float64
	SimpleWindow       int
	VolatilityLow      float64
	VolatilityHigh     float64
	SelectionMargin    float64
	TrendR2Threshold   float64
	TrendMinSlopeRatio float64
	MaxHorizon         int
}

// SeasonalityOptions configures the seasonality detector
type SeasonalityOptions struct {
	StrengthThreshold float64
	MinYearsForHigh   int
}

// AnomalyOptions configures the anomaly detector
type AnomalyOptions struct {
	LowSigma          float64
	MediumSigma       float64
	HighSigma         float64
	MinSamples        int
	MinRelativeStdDev float64
}

// RecurringOptions configures the recurring pattern detector
type RecurringOptions struct {
	AmountTolerance float64
	MaxGapCV        float64
	MonthlyMinDays  float64
	MonthlyMaxDays  float64
}

// InsightOptions configures the insight synthesizer
type InsightOptions struct {
	BudgetAlertThreshold float64
}

// DefaultAnalyticsOptions returns the documented default thresholds
func DefaultAnalyticsOptions() AnalyticsOptions {
	return AnalyticsOptions{
		Forecast:    DefaultForecastOptions(),
		Seasonality: DefaultSeasonalityOptions(),
		Anomaly:     DefaultAnomalyOptions(),
		Recurring:   DefaultRecurringOptions(),
		Insight:     DefaultInsightOptions(),
	}
}

func DefaultForecastOptions() ForecastOptions {
	return ForecastOptions{
		SmoothingAlpha:     0.3,
		OutlierSigma:       2.5,
		ConfidenceZ:        1.96,
		SimpleWindow:       0,
		VolatilityLow:      0.15,
		VolatilityHigh:     0.40,
		SelectionMargin:    0.05,
		TrendR2Threshold:   0.5,
		TrendMinSlopeRatio: 0.02,
		MaxHorizon:         120,
	}
}

func DefaultSeasonalityOptions() SeasonalityOptions {
	return SeasonalityOptions{
		StrengthThreshold: 0.10,
		MinYearsForHigh:   2,
	}
}

func DefaultAnomalyOptions() AnomalyOptions {
	return AnomalyOptions{
		LowSigma:          2.0,
		MediumSigma:       2.5,
		HighSigma:         3.0,
		MinSamples:        5,
		MinRelativeStdDev: 0.05,
	}
}

func DefaultRecurringOptions() RecurringOptions {
	return RecurringOptions{
		AmountTolerance: 0.05,
		MaxGapCV:        0.35,
		MonthlyMinDays:  27,
		MonthlyMaxDays:  33,
	}
}

func DefaultInsightOptions() InsightOptions {
	return InsightOptions{
		BudgetAlertThreshold: 0.8,
	}
}

// AnalyticsOptionsFromConfig maps the environment-driven configuration onto
// engine options. Non-positive values keep the default for that threshold.
func AnalyticsOptionsFromConfig(cfg config.AnalyticsConfig) AnalyticsOptions {
	opts := DefaultAnalyticsOptions()

	setFraction(&opts.Forecast.SmoothingAlpha, cfg.SmoothingAlpha)
	setFloat(&opts.Forecast.OutlierSigma, cfg.OutlierSigma)
	setFloat(&opts.Forecast.ConfidenceZ, cfg.ConfidenceZ)
	setInt(&opts.Forecast.SimpleWindow, cfg.SimpleWindow)
	setFloat(&opts.Forecast.VolatilityLow, cfg.VolatilityLow)
	setFloat(&opts.Forecast.VolatilityHigh, cfg.VolatilityHigh)
	setFloat(&opts.Forecast.SelectionMargin, cfg.SelectionMargin)
	setFloat(&opts.Forecast.TrendR2Threshold, cfg.TrendR2Threshold)
	setFloat(&opts.Forecast.TrendMinSlopeRatio, cfg.TrendMinSlopeRatio)
	setInt(&opts.Forecast.MaxHorizon, cfg.MaxForecastHorizon)

	setFloat(&opts.Seasonality.StrengthThreshold, cfg.SeasonalityThreshold)
	setInt(&opts.Seasonality.MinYearsForHigh, cfg.SeasonalityMinYears)

	setFloat(&opts.Anomaly.LowSigma, cfg.AnomalyLowSigma)
	setFloat(&opts.Anomaly.MediumSigma, cfg.AnomalyMediumSigma)
	setFloat(&opts.Anomaly.HighSigma, cfg.AnomalyHighSigma)
	setInt(&opts.Anomaly.MinSamples, cfg.AnomalyMinSamples)
	setFloat(&opts.Anomaly.MinRelativeStdDev, cfg.AnomalyMinRelStdDev)

	setFloat(&opts.Recurring.AmountTolerance, cfg.RecurringTolerance)
	setFloat(&opts.Recurring.MaxGapCV, cfg.RecurringMaxGapCV)
	setFloat(&opts.Recurring.MonthlyMinDays, cfg.RecurringMonthlyMin)
	setFloat(&opts.Recurring.MonthlyMaxDays, cfg.RecurringMonthlyMax)

	setFloat(&opts.Insight.BudgetAlertThreshold, cfg.BudgetAlertThreshold)

	return opts
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// setFraction only accepts values strictly between zero and one
func setFraction(dst *float64, v float64) {
	if v > 0 && v < 1 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

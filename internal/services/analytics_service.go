package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrInvalidSeriesKind = errors.New("series must be one of expense, income, net")

const (
	operationAggregate   = "aggregate"
	operationForecast    = "forecast"
	operationSeasonality = "seasonality"
	operationAnomalies   = "anomalies"
	operationRecurring   = "recurring"
	operationInsights    = "insights"
)

// AnalyticsEngine bundles the stateless engine components
type AnalyticsEngine struct {
	Aggregator  PeriodAggregatorInterface
	Forecast    ForecastServiceInterface
	Seasonality SeasonalityServiceInterface
	Anomaly     AnomalyServiceInterface
	Recurring   RecurringServiceInterface
	Insight     InsightServiceInterface
}

// NewAnalyticsEngine wires every engine component from one set of options
func NewAnalyticsEngine(opts AnalyticsOptions) AnalyticsEngine {
	aggregator := NewPeriodAggregator()
	forecast := NewForecastService(opts.Forecast)
	seasonality := NewSeasonalityService(opts.Seasonality)
	anomaly := NewAnomalyService(opts.Anomaly)
	recurring := NewRecurringService(opts.Recurring)

	return AnalyticsEngine{
		Aggregator:  aggregator,
		Forecast:    forecast,
		Seasonality: seasonality,
		Anomaly:     anomaly,
		Recurring:   recurring,
		Insight:     NewInsightService(aggregator, forecast, seasonality, anomaly, recurring, opts.Insight),
	}
}

type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	engine          AnalyticsEngine
	cache           *analyticsCache
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAnalyticsService creates the analytics facade. cacheEntries bounds the memo cache.
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	engine AnalyticsEngine,
	cacheEntries int,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnalyticsServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &analyticsService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		engine:          engine,
		cache:           newAnalyticsCache(cacheEntries),
		metrics:         metrics,
		logger:          logger,
	}
}

// Aggregate buckets the filtered transactions. A date range in the filters zero-fills empty periods.
func (s *analyticsService) Aggregate(filters models.TransactionFilters, granularity models.Granularity) ([]models.PeriodBucket, error) {
	if !granularity.IsValid() {
		return nil, ErrInvalidGranularity
	}

	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	params := append([]string{string(granularity)}, rangeParams(filters)...)
	return memoize(s, operationAggregate, contentKey(operationAggregate, transactions, params...), func() ([]models.PeriodBucket, error) {
		return s.engine.Aggregator.Aggregate(transactions, granularity, filters.DateRange())
	})
}

// Forecast projects the monthly series of the filtered transactions
func (s *analyticsService) Forecast(filters models.TransactionFilters, kind models.SeriesKind, horizon int) (*models.ForecastSummary, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidSeriesKind
	}
	if horizon <= 0 {
		return nil, ErrInvalidHorizon
	}

	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	params := append([]string{string(kind), strconv.Itoa(horizon)}, rangeParams(filters)...)
	key := contentKey(operationForecast, transactions, params...)
	return memoize(s, operationForecast, key, func() (*models.ForecastSummary, error) {
		monthly, err := s.engine.Aggregator.Aggregate(transactions, models.GranularityMonth, filters.DateRange())
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate monthly series: %w", err)
		}
		return s.engine.Forecast.Forecast(Series(monthly, kind), horizon)
	})
}

// ForecastSeries forecasts a caller-supplied series without touching the store or the cache
func (s *analyticsService) ForecastSeries(series []decimal.Decimal, horizon int) (*models.ForecastSummary, error) {
	start := time.Now()
	summary, err := s.engine.Forecast.Forecast(series, horizon)
	s.record(operationForecast, "direct", start, err)
	return summary, err
}

// Seasonality looks for a yearly shape in the monthly series of the filtered transactions
func (s *analyticsService) Seasonality(filters models.TransactionFilters, kind models.SeriesKind) (*models.SeasonalityResult, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidSeriesKind
	}

	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	return memoize(s, operationSeasonality, contentKey(operationSeasonality, transactions, string(kind)), func() (*models.SeasonalityResult, error) {
		monthly, err := s.engine.Aggregator.Aggregate(transactions, models.GranularityMonth, ObservedRange(transactions))
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate monthly series: %w", err)
		}
		result := s.engine.Seasonality.DetectSeasonality(PeriodValues(monthly, kind))
		return &result, nil
	})
}

// Anomalies flags unusual expenses among the filtered transactions
func (s *analyticsService) Anomalies(filters models.TransactionFilters, scope models.AnomalyScope) ([]models.Anomaly, error) {
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}

	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	return memoize(s, operationAnomalies, contentKey(operationAnomalies, transactions, string(scope)), func() ([]models.Anomaly, error) {
		return s.engine.Anomaly.DetectAnomalies(transactions, scope)
	})
}

// Recurring finds repeating payments among the filtered transactions
func (s *analyticsService) Recurring(filters models.TransactionFilters) ([]models.RecurringPattern, error) {
	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	return memoize(s, operationRecurring, contentKey(operationRecurring, transactions), func() ([]models.RecurringPattern, error) {
		return s.engine.Recurring.DetectRecurring(transactions), nil
	})
}

// Insights synthesizes insights for the filtered transactions against the stored budgets
func (s *analyticsService) Insights(filters models.TransactionFilters) (*models.InsightReport, error) {
	transactions, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		s.logger.Error("failed to load budgets", "error", err)
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	limits := models.BudgetLimits(budgets)

	key := contentKey(operationInsights, transactions, budgetParams(limits)...)
	return memoize(s, operationInsights, key, func() (*models.InsightReport, error) {
		return s.engine.Insight.Synthesize(transactions, limits), nil
	})
}

// rangeParams renders the date range for contentKey. The range zero-fills the
// monthly series, so two ranges over the same rows produce different results.
func rangeParams(filters models.TransactionFilters) []string {
	dateRange := filters.DateRange()
	if dateRange == nil {
		return nil
	}
	return []string{dateRange.Start.Format(dayKeyLayout), dateRange.End.Format(dayKeyLayout)}
}

// loadTransactions reads the column-filtered rows from the store and applies the
// date bounds in memory. Rows with unparsable dates only survive when no bound is set.
func (s *analyticsService) loadTransactions(filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		s.logger.Error("failed to load transactions",
			"account", filters.Account,
			"category", filters.Category,
			"error", err,
		)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if filters.StartDate == nil && filters.EndDate == nil {
		s.metrics.RecordGauge("analytics.transactions_loaded", float64(len(transactions)), nil)
		return transactions, nil
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		day, ok := transactions[i].ParseDate()
		if !ok {
			continue
		}
		if filters.StartDate != nil && day.Before(truncateDay(*filters.StartDate)) {
			continue
		}
		if filters.EndDate != nil && day.After(truncateDay(*filters.EndDate)) {
			continue
		}
		filtered = append(filtered, transactions[i])
	}

	s.metrics.RecordGauge("analytics.transactions_loaded", float64(len(filtered)), nil)
	return filtered, nil
}

func (s *analyticsService) record(operation, status string, start time.Time, err error) {
	if err != nil {
		status = "error"
	}
	s.metrics.IncrementCounter("analytics.computation", map[string]string{
		"operation": operation,
		"status":    status,
	})
	s.metrics.RecordProcessingTime("analytics."+operation, time.Since(start))
}

// memoize returns the cached result for key or computes and stores it.
// Errors are never cached.
func memoize[T any](s *analyticsService, operation string, key uint64, compute func() (T, error)) (T, error) {
	start := time.Now()

	if cached, ok := s.cache.get(key); ok {
		if value, ok := cached.(T); ok {
			s.record(operation, "hit", start, nil)
			return value, nil
		}
	}

	value, err := compute()
	s.record(operation, "miss", start, err)
	if err != nil {
		s.logger.Warn("analytics computation failed", "operation", operation, "error", err)
		return value, err
	}

	s.cache.put(key, value)
	s.logger.Debug("analytics computed",
		"operation", operation,
		"duration_ms", time.Since(start).Milliseconds(),
		"cache_entries", s.cache.size(),
	)
	return value, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

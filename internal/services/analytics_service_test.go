package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AnalyticsServiceTestSuite is the test suite for the analytics facade
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTxnRepo     *repository_mocks.MockTransactionRepositoryInterface
	mockBudgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	mockMetrics     *service_mocks.MockMetricsRecorderInterface
	mockAggregator  *service_mocks.MockPeriodAggregatorInterface
	mockAnomaly     *service_mocks.MockAnomalyServiceInterface
	mockInsight     *service_mocks.MockInsightServiceInterface
	realEngine      AnalyticsEngine
	history         []models.Transaction
	unparsableEntry models.Transaction
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

// SetupTest initializes the test suite before each test
func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTxnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockAggregator = service_mocks.NewMockPeriodAggregatorInterface(s.ctrl)
	s.mockAnomaly = service_mocks.NewMockAnomalyServiceInterface(s.ctrl)
	s.mockInsight = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.realEngine = NewAnalyticsEngine(DefaultAnalyticsOptions())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.history = monthlyExpenses(start, 6, 10, "Groceries", 400)
	s.history = append(s.history, monthlyExpenses(start, 6, 1, "Housing", 1450)...)
	s.unparsableEntry = expense("sometime last spring", "Groceries", 75)
	s.history = append(s.history, s.unparsableEntry)
}

// TearDownTest cleans up after each test
func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsServiceTestSuite) allowMetrics() {
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *AnalyticsServiceTestSuite) newService(engine AnalyticsEngine) AnalyticsServiceInterface {
	return NewAnalyticsService(s.mockTxnRepo, s.mockBudgetRepo, engine, 16, s.mockMetrics, slog.Default())
}

func datePtr(raw string) *time.Time {
	t := dateOf(raw)
	return &t
}

func (s *AnalyticsServiceTestSuite) TestAggregate_InvalidGranularity() {
	service := s.newService(s.realEngine)

	buckets, err := service.Aggregate(models.TransactionFilters{}, models.Granularity("week"))

	s.ErrorIs(err, ErrInvalidGranularity)
	s.Nil(buckets)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_RepositoryErrorIsWrapped() {
	repoErr := errors.New("connection refused")
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, repoErr)
	service := s.newService(s.realEngine)

	buckets, err := service.Aggregate(models.TransactionFilters{}, models.GranularityMonth)

	s.ErrorIs(err, repoErr)
	s.Contains(err.Error(), "failed to load transactions")
	s.Nil(buckets)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_PassesColumnFiltersToRepository() {
	s.allowMetrics()
	filters := models.TransactionFilters{Account: "Checking", Category: "Groceries", Type: models.TransactionTypeExpense}
	s.mockTxnRepo.EXPECT().GetWithFilters(filters).Return(monthlyExpenses(dateOf("2024-01-01"), 3, 10, "Groceries", 400), nil)
	service := s.newService(s.realEngine)

	buckets, err := service.Aggregate(filters, models.GranularityMonth)

	s.Require().NoError(err)
	s.Require().Len(buckets, 3)
	s.Equal("2024-01", buckets[0].PeriodKey)
	s.True(assertDecimal(400, buckets[2].Expense))
}

func (s *AnalyticsServiceTestSuite) TestAggregate_DateRangeFiltersInMemoryAndZeroFills() {
	s.mockMetrics.EXPECT().RecordGauge("analytics.transactions_loaded", float64(6), gomock.Any())
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	service := s.newService(s.realEngine)

	filters := models.TransactionFilters{
		StartDate: datePtr("2024-02-01"),
		EndDate:   datePtr("2024-04-30"),
	}
	buckets, err := service.Aggregate(filters, models.GranularityMonth)

	s.Require().NoError(err)
	s.Require().Len(buckets, 3)
	s.Equal("2024-02", buckets[0].PeriodKey)
	s.Equal("2024-04", buckets[2].PeriodKey)
	for _, bucket := range buckets {
		s.True(assertDecimal(1850, bucket.Expense))
	}
}

func (s *AnalyticsServiceTestSuite) TestAggregate_OpenEndedDateBoundDropsUnparsableRows() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	service := s.newService(s.realEngine)

	buckets, err := service.Aggregate(models.TransactionFilters{StartDate: datePtr("2024-06-01")}, models.GranularityYear)

	s.Require().NoError(err)
	s.Require().Len(buckets, 1)
	s.Equal(int64(2), buckets[0].TransactionCount)
}

func (s *AnalyticsServiceTestSuite) TestAggregate_CachesIdenticalRequests() {
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil).Times(2)
	s.mockAggregator.EXPECT().
		Aggregate(s.history, models.GranularityMonth, nil).
		Return([]models.PeriodBucket{{PeriodKey: "2024-01"}}, nil).
		Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("analytics.computation", map[string]string{"operation": operationAggregate, "status": "miss"})
	s.mockMetrics.EXPECT().IncrementCounter("analytics.computation", map[string]string{"operation": operationAggregate, "status": "hit"})
	s.mockMetrics.EXPECT().RecordProcessingTime("analytics.aggregate", gomock.Any()).Times(2)
	s.mockMetrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	service := s.newService(AnalyticsEngine{Aggregator: s.mockAggregator})

	first, err := service.Aggregate(models.TransactionFilters{}, models.GranularityMonth)
	s.Require().NoError(err)
	second, err := service.Aggregate(models.TransactionFilters{}, models.GranularityMonth)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *AnalyticsServiceTestSuite) TestAnomalies_ErrorsAreNotCached() {
	s.allowMetrics()
	detectorErr := errors.New("detector failed")
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil).Times(2)
	gomock.InOrder(
		s.mockAnomaly.EXPECT().DetectAnomalies(s.history, models.AnomalyScopeGlobal).Return(nil, detectorErr),
		s.mockAnomaly.EXPECT().DetectAnomalies(s.history, models.AnomalyScopeGlobal).Return([]models.Anomaly{}, nil),
	)
	service := s.newService(AnalyticsEngine{Anomaly: s.mockAnomaly})

	_, err := service.Anomalies(models.TransactionFilters{}, models.AnomalyScopeGlobal)
	s.ErrorIs(err, detectorErr)

	anomalies, err := service.Anomalies(models.TransactionFilters{}, models.AnomalyScopeGlobal)
	s.Require().NoError(err)
	s.Empty(anomalies)
}

func (s *AnalyticsServiceTestSuite) TestAnomalies_InvalidScope() {
	service := s.newService(s.realEngine)

	anomalies, err := service.Anomalies(models.TransactionFilters{}, models.AnomalyScope("account"))

	s.ErrorIs(err, ErrInvalidScope)
	s.Nil(anomalies)
}

func (s *AnalyticsServiceTestSuite) TestForecast_Validation() {
	service := s.newService(s.realEngine)

	_, err := service.Forecast(models.TransactionFilters{}, models.SeriesKind("balance"), 3)
	s.ErrorIs(err, ErrInvalidSeriesKind)

	_, err = service.Forecast(models.TransactionFilters{}, models.SeriesExpense, 0)
	s.ErrorIs(err, ErrInvalidHorizon)
}

func (s *AnalyticsServiceTestSuite) TestForecast_UsesMonthlySeries() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	service := s.newService(s.realEngine)

	summary, err := service.Forecast(models.TransactionFilters{}, models.SeriesExpense, 2)

	s.Require().NoError(err)
	s.Require().Len(summary.Best.Forecast, 2)
	s.True(assertDecimal(1850, summary.Simple.Forecast[0]))
	s.Equal(models.TrendStable, summary.Trend)
}

func (s *AnalyticsServiceTestSuite) TestForecast_DateRangeIsPartOfCacheKey() {
	s.allowMetrics()
	rows := monthlyExpenses(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 6, 15, "Housing", 1000)
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(rows, nil).Times(2)
	service := s.newService(s.realEngine)

	firstHalf, err := service.Forecast(models.TransactionFilters{
		StartDate: datePtr("2024-01-01"),
		EndDate:   datePtr("2024-06-30"),
	}, models.SeriesExpense, 1)
	s.Require().NoError(err)
	s.True(assertDecimal(1000, firstHalf.Simple.Forecast[0]))

	fullYear, err := service.Forecast(models.TransactionFilters{
		StartDate: datePtr("2024-01-01"),
		EndDate:   datePtr("2024-12-31"),
	}, models.SeriesExpense, 1)
	s.Require().NoError(err)
	s.True(assertDecimal(500, fullYear.Simple.Forecast[0]), "got %s", fullYear.Simple.Forecast[0])
}

func (s *AnalyticsServiceTestSuite) TestForecastSeries_BypassesStoreAndCache() {
	s.mockMetrics.EXPECT().IncrementCounter("analytics.computation", map[string]string{"operation": operationForecast, "status": "direct"}).Times(2)
	s.mockMetrics.EXPECT().RecordProcessingTime("analytics.forecast", gomock.Any()).Times(2)
	service := s.newService(s.realEngine)

	summary, err := service.ForecastSeries(decimals(100, 200, 300), 1)
	s.Require().NoError(err)
	s.Len(summary.Best.Forecast, 1)

	_, err = service.ForecastSeries(decimals(100, 200, 300), 1)
	s.Require().NoError(err)
}

func (s *AnalyticsServiceTestSuite) TestForecastSeries_ErrorStatus() {
	s.mockMetrics.EXPECT().IncrementCounter("analytics.computation", map[string]string{"operation": operationForecast, "status": "error"})
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any())
	service := s.newService(s.realEngine)

	_, err := service.ForecastSeries(decimals(1, 2), -2)

	s.ErrorIs(err, ErrInvalidHorizon)
}

func (s *AnalyticsServiceTestSuite) TestSeasonality() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	service := s.newService(s.realEngine)

	result, err := service.Seasonality(models.TransactionFilters{}, models.SeriesExpense)

	s.Require().NoError(err)
	s.False(result.HasSeasonality)
	s.Equal(1, result.Years)
	s.Len(result.Indices, 6)

	_, err = service.Seasonality(models.TransactionFilters{}, models.SeriesKind(""))
	s.ErrorIs(err, ErrInvalidSeriesKind)
}

func (s *AnalyticsServiceTestSuite) TestRecurring() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	service := s.newService(s.realEngine)

	patterns, err := service.Recurring(models.TransactionFilters{})

	s.Require().NoError(err)
	s.Len(patterns, 2)
	for _, p := range patterns {
		s.True(p.IsMonthly)
	}
}

func (s *AnalyticsServiceTestSuite) TestInsights_PassesBudgetLimits() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	s.mockBudgetRepo.EXPECT().GetAll().Return([]models.Budget{
		{Category: "Groceries", MonthlyLimit: decimal.NewFromInt(300)},
	}, nil)
	expected := &models.InsightReport{All: []models.Insight{{Type: models.InsightBudgetAlert}}}
	s.mockInsight.EXPECT().
		Synthesize(s.history, map[string]decimal.Decimal{"Groceries": decimal.NewFromInt(300)}).
		Return(expected)
	service := s.newService(AnalyticsEngine{Insight: s.mockInsight})

	report, err := service.Insights(models.TransactionFilters{})

	s.Require().NoError(err)
	s.Equal(expected, report)
}

func (s *AnalyticsServiceTestSuite) TestInsights_BudgetErrorIsWrapped() {
	s.allowMetrics()
	budgetErr := errors.New("budgets unavailable")
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	s.mockBudgetRepo.EXPECT().GetAll().Return(nil, budgetErr)
	service := s.newService(AnalyticsEngine{Insight: s.mockInsight})

	report, err := service.Insights(models.TransactionFilters{})

	s.ErrorIs(err, budgetErr)
	s.Contains(err.Error(), "failed to load budgets")
	s.Nil(report)
}

func (s *AnalyticsServiceTestSuite) TestInsights_EndToEndBudgetAlert() {
	s.allowMetrics()
	s.mockTxnRepo.EXPECT().GetWithFilters(gomock.Any()).Return(s.history, nil)
	s.mockBudgetRepo.EXPECT().GetAll().Return([]models.Budget{
		{Category: "Housing", MonthlyLimit: decimal.NewFromInt(1400)},
	}, nil)
	service := s.newService(s.realEngine)

	report, err := service.Insights(models.TransactionFilters{})

	s.Require().NoError(err)
	s.Require().NotEmpty(report.ByPriority.High)
	s.Equal(models.InsightBudgetAlert, report.ByPriority.High[0].Type)
	s.Equal("Housing", report.ByPriority.High[0].Category)
}

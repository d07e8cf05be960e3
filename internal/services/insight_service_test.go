package services

import (
	"errors"
	"testing"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// InsightServiceTestSuite drives the synthesizer with mocked detectors
type InsightServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAggregator  *service_mocks.MockPeriodAggregatorInterface
	mockForecast    *service_mocks.MockForecastServiceInterface
	mockSeasonality *service_mocks.MockSeasonalityServiceInterface
	mockAnomaly     *service_mocks.MockAnomalyServiceInterface
	mockRecurring   *service_mocks.MockRecurringServiceInterface
	service         InsightServiceInterface
}

func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAggregator = service_mocks.NewMockPeriodAggregatorInterface(s.ctrl)
	s.mockForecast = service_mocks.NewMockForecastServiceInterface(s.ctrl)
	s.mockSeasonality = service_mocks.NewMockSeasonalityServiceInterface(s.ctrl)
	s.mockAnomaly = service_mocks.NewMockAnomalyServiceInterface(s.ctrl)
	s.mockRecurring = service_mocks.NewMockRecurringServiceInterface(s.ctrl)
	s.service = NewInsightService(s.mockAggregator, s.mockForecast, s.mockSeasonality, s.mockAnomaly, s.mockRecurring, DefaultInsightOptions())
}

func (s *InsightServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightServiceTestSuite) TestSynthesize_PositiveWhenNothingFound() {
	s.mockAnomaly.EXPECT().DetectAnomalies(gomock.Any(), models.AnomalyScopeCategory).Return([]models.Anomaly{}, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), models.GranularityMonth, nil).Return([]models.PeriodBucket{}, nil)
	s.mockRecurring.EXPECT().DetectRecurring(gomock.Any()).Return([]models.RecurringPattern{})

	report := s.service.Synthesize(nil, nil)

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightPositive, report.All[0].Type)
	s.Equal(models.PriorityLow, report.All[0].Priority)
	s.Empty(report.ByPriority.High)
	s.Empty(report.ByPriority.Medium)
	s.NotNil(report.ByPriority.High)
	s.Len(report.ByPriority.Low, 1)
}

func (s *InsightServiceTestSuite) TestSynthesize_RanksEveryInsightKind() {
	transactions := []models.Transaction{expense("2024-06-05", "Travel", 1200)}
	monthly := []models.PeriodBucket{
		{PeriodKey: "2024-05", Expense: decimal.NewFromInt(900)},
		{PeriodKey: "2024-06", Expense: decimal.NewFromInt(1200)},
	}

	s.mockAnomaly.EXPECT().DetectAnomalies(transactions, models.AnomalyScopeCategory).Return([]models.Anomaly{
		{TransactionID: uuid.New(), Category: "Dining", Severity: models.SeverityHigh, Amount: decimal.NewFromInt(600), DeviationSigma: decimal.NewFromFloat(6.2), BaselineMean: decimal.NewFromInt(40), Date: "2024-06-02"},
		{TransactionID: uuid.New(), Category: "Dining", Severity: models.SeverityHigh, Amount: decimal.NewFromInt(300), DeviationSigma: decimal.NewFromFloat(3.4), BaselineMean: decimal.NewFromInt(40), Date: "2024-06-03"},
		{TransactionID: uuid.New(), Category: "Groceries", Severity: models.SeverityMedium, Amount: decimal.NewFromInt(250), DeviationSigma: decimal.NewFromFloat(2.7), BaselineMean: decimal.NewFromInt(100), Date: "2024-06-04"},
		{TransactionID: uuid.New(), Category: "Shopping", Severity: models.SeverityLow, Amount: decimal.NewFromInt(90), DeviationSigma: decimal.NewFromFloat(2.1), BaselineMean: decimal.NewFromInt(60), Date: "2024-06-04"},
	}, nil)
	s.mockAggregator.EXPECT().Aggregate(transactions, models.GranularityMonth, ObservedRange(transactions)).Return(monthly, nil)
	s.mockForecast.EXPECT().Forecast(gomock.Any(), 1).Return(&models.ForecastSummary{
		Trend: models.TrendIncreasing,
		Slope: decimal.NewFromInt(300),
	}, nil)
	s.mockSeasonality.EXPECT().DetectSeasonality(gomock.Any()).Return(models.SeasonalityResult{
		HasSeasonality: true,
		PeakMonth:      12,
		Indices:        map[int]decimal.Decimal{12: decimal.NewFromFloat(1.6)},
		Years:          2,
		Confidence:     models.SeasonalityConfidenceHigh,
	})
	s.mockRecurring.EXPECT().DetectRecurring(transactions).Return([]models.RecurringPattern{
		{Category: "Entertainment", Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(15.49), IsMonthly: true},
		{Category: "Housing", Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1450), IsMonthly: true},
		{Category: "Salary", Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(4200), IsMonthly: true},
	})

	report := s.service.Synthesize(transactions, map[string]decimal.Decimal{"Travel": decimal.NewFromInt(1000)})

	types := make([]models.InsightType, 0, len(report.All))
	for _, insight := range report.All {
		types = append(types, insight.Type)
	}
	s.Equal([]models.InsightType{
		models.InsightBudgetAlert,
		models.InsightAnomaly,
		models.InsightAnomaly,
		models.InsightTrend,
		models.InsightPattern,
		models.InsightSeasonal,
	}, types)

	s.Len(report.ByPriority.High, 2)
	s.Equal("Travel", report.ByPriority.High[0].Category)
	s.Equal("Dining", report.ByPriority.High[1].Category)
	s.Contains(report.ByPriority.High[1].Message, "600.00")

	s.Len(report.ByPriority.Medium, 2)
	s.Equal("Groceries", report.ByPriority.Medium[0].Category)
	s.Contains(report.ByPriority.Medium[1].Message, "300.00")

	s.Len(report.ByPriority.Low, 2)
	s.Contains(report.ByPriority.Low[0].Message, "1465.49")
	s.Contains(report.ByPriority.Low[1].Title, "December")
}

func (s *InsightServiceTestSuite) TestSynthesize_TrendSeriesIsZeroFilled() {
	service := NewInsightService(NewPeriodAggregator(), s.mockForecast, s.mockSeasonality, s.mockAnomaly, s.mockRecurring, DefaultInsightOptions())
	transactions := []models.Transaction{
		expense("2024-01-10", "Travel", 900),
		expense("2024-04-12", "Travel", 300),
		expense("2024-06-03", "Travel", 600),
	}

	s.mockAnomaly.EXPECT().DetectAnomalies(transactions, models.AnomalyScopeCategory).Return([]models.Anomaly{}, nil)
	s.mockForecast.EXPECT().Forecast(gomock.Any(), 1).
		DoAndReturn(func(series []decimal.Decimal, _ int) (*models.ForecastSummary, error) {
			s.Require().Len(series, 6)
			s.Equal([]float64{900, 0, 0, 300, 0, 600}, toFloats(series))
			return &models.ForecastSummary{Trend: models.TrendStable}, nil
		})
	s.mockSeasonality.EXPECT().DetectSeasonality(gomock.Any()).
		DoAndReturn(func(values map[string]decimal.Decimal) models.SeasonalityResult {
			s.Len(values, 6)
			s.True(values["2024-02"].IsZero())
			return models.SeasonalityResult{}
		})
	s.mockRecurring.EXPECT().DetectRecurring(transactions).Return([]models.RecurringPattern{})

	service.Synthesize(transactions, nil)
}

func (s *InsightServiceTestSuite) TestSynthesize_SkipsTrendAndSeasonWhenAggregationFails() {
	s.mockAnomaly.EXPECT().DetectAnomalies(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrInvalidGranularity)
	s.mockRecurring.EXPECT().DetectRecurring(gomock.Any()).Return(nil)

	report := s.service.Synthesize([]models.Transaction{expense("2024-01-01", "Dining", 10)}, nil)

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightPositive, report.All[0].Type)
}

func (s *InsightServiceTestSuite) TestSynthesize_StableTrendAndWeakSeasonAreQuiet() {
	monthly := []models.PeriodBucket{{PeriodKey: "2024-01", Expense: decimal.NewFromInt(100)}}

	s.mockAnomaly.EXPECT().DetectAnomalies(gomock.Any(), gomock.Any()).Return([]models.Anomaly{}, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(monthly, nil)
	s.mockForecast.EXPECT().Forecast(gomock.Any(), 1).Return(&models.ForecastSummary{Trend: models.TrendDecreasing}, nil)
	s.mockSeasonality.EXPECT().DetectSeasonality(gomock.Any()).Return(models.SeasonalityResult{
		HasSeasonality: true,
		PeakMonth:      1,
		Confidence:     models.SeasonalityConfidenceLow,
	})
	s.mockRecurring.EXPECT().DetectRecurring(gomock.Any()).Return([]models.RecurringPattern{
		{Category: "Groceries", Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(50), IsMonthly: false},
	})

	report := s.service.Synthesize([]models.Transaction{expense("2024-01-01", "Groceries", 100)}, nil)

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightPositive, report.All[0].Type)
}

// InsightScenarioTestSuite runs the synthesizer on the real engine
type InsightScenarioTestSuite struct {
	suite.Suite
	service InsightServiceInterface
}

func TestInsightScenarioSuite(t *testing.T) {
	suite.Run(t, new(InsightScenarioTestSuite))
}

func (s *InsightScenarioTestSuite) SetupTest() {
	s.service = NewAnalyticsEngine(DefaultAnalyticsOptions()).Insight
}

func (s *InsightScenarioTestSuite) groceries(amounts ...float64) []models.Transaction {
	days := []string{"2024-06-03", "2024-06-11", "2024-06-19", "2024-06-27"}
	out := make([]models.Transaction, 0, len(amounts))
	for i, amount := range amounts {
		out = append(out, expense(days[i], "Groceries", amount))
	}
	return out
}

func (s *InsightScenarioTestSuite) TestBudgetExceeded() {
	transactions := s.groceries(4000, 3500, 3000)

	report := s.service.Synthesize(transactions, map[string]decimal.Decimal{"Groceries": decimal.NewFromInt(10000)})

	s.Require().Len(report.All, 1)
	alert := report.All[0]
	s.Equal(models.InsightBudgetAlert, alert.Type)
	s.Equal(models.PriorityHigh, alert.Priority)
	s.Equal("Groceries", alert.Category)
	s.Equal("Spent 10500.00 of the 10000.00 monthly budget for Groceries in 2024-06 (105%).", alert.Message)
	s.Len(report.ByPriority.High, 1)
}

func (s *InsightScenarioTestSuite) TestBudgetWarning() {
	transactions := s.groceries(4000, 3000, 1500)

	report := s.service.Synthesize(transactions, map[string]decimal.Decimal{"Groceries": decimal.NewFromInt(10000)})

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightBudgetWarning, report.All[0].Type)
	s.Equal(models.PriorityMedium, report.All[0].Priority)
	s.Contains(report.All[0].Message, "(85%)")
}

func (s *InsightScenarioTestSuite) TestBudgetUsesLatestMonthOnly() {
	transactions := []models.Transaction{
		expense("2024-05-10", "Groceries", 9000),
		expense("2024-05-20", "Groceries", 4000),
		expense("2024-06-10", "Groceries", 2000),
	}

	report := s.service.Synthesize(transactions, map[string]decimal.Decimal{"Groceries": decimal.NewFromInt(10000)})

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightPositive, report.All[0].Type)
}

func (s *InsightScenarioTestSuite) TestUnbudgetedAndInPocketSpendIsIgnored() {
	transactions := []models.Transaction{
		expense("2024-06-10", "Travel", 20000),
		newTxn("2024-06-26", models.TransactionTypeExpense, models.InPocketCategory, 50000),
	}

	report := s.service.Synthesize(transactions, map[string]decimal.Decimal{
		"Groceries":             decimal.NewFromInt(900),
		models.InPocketCategory: decimal.NewFromInt(100),
	})

	s.Require().Len(report.All, 1)
	s.Equal(models.InsightPositive, report.All[0].Type)
}

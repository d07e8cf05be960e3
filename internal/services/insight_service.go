package services

import (
	"fmt"
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const percentPlaces = 0

type insightService struct {
	aggregator  PeriodAggregatorInterface
	forecast    ForecastServiceInterface
	seasonality SeasonalityServiceInterface
	anomaly     AnomalyServiceInterface
	recurring   RecurringServiceInterface
	opts        InsightOptions
}

// NewInsightService creates the insight synthesizer on top of the individual detectors
func NewInsightService(
	aggregator PeriodAggregatorInterface,
	forecast ForecastServiceInterface,
	seasonality SeasonalityServiceInterface,
	anomaly AnomalyServiceInterface,
	recurring RecurringServiceInterface,
	opts InsightOptions,
) InsightServiceInterface {
	return &insightService{
		aggregator:  aggregator,
		forecast:    forecast,
		seasonality: seasonality,
		anomaly:     anomaly,
		recurring:   recurring,
		opts:        opts,
	}
}

// Synthesize runs every detector over the transactions and turns their findings
// into a ranked list of insights. budgets maps category to monthly limit.
func (s *insightService) Synthesize(transactions []models.Transaction, budgets map[string]decimal.Decimal) *models.InsightReport {
	insights := make([]models.Insight, 0)

	insights = append(insights, s.budgetInsights(transactions, budgets)...)
	insights = append(insights, s.anomalyInsights(transactions)...)

	monthly, err := s.aggregator.Aggregate(transactions, models.GranularityMonth, ObservedRange(transactions))
	if err == nil && len(monthly) > 0 {
		insights = append(insights, s.trendInsights(monthly)...)
		insights = append(insights, s.seasonalInsights(monthly)...)
	}

	insights = append(insights, s.patternInsights(transactions)...)

	if len(insights) == 0 {
		insights = append(insights, models.Insight{
			Type:     models.InsightPositive,
			Title:    "Spending is on track",
			Message:  "No budget overruns, unusual transactions or rising trends were found.",
			Priority: models.PriorityLow,
		})
	}

	return buildReport(insights)
}

// budgetInsights compares spend in the latest observed month against each budget
func (s *insightService) budgetInsights(transactions []models.Transaction, budgets map[string]decimal.Decimal) []models.Insight {
	if len(budgets) == 0 {
		return nil
	}

	spend := make(map[string]map[string]decimal.Decimal)
	latest := ""
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		day, ok := txn.ParseDate()
		if !ok {
			continue
		}

		month := day.Format(monthKeyLayout)
		if month > latest {
			latest = month
		}
		if spend[month] == nil {
			spend[month] = make(map[string]decimal.Decimal)
		}
		spend[month][txn.Category] = spend[month][txn.Category].Add(txn.Amount)
	}

	if latest == "" {
		return nil
	}

	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	threshold := decimal.NewFromFloat(s.opts.BudgetAlertThreshold)
	insights := make([]models.Insight, 0)
	for _, category := range categories {
		limit := budgets[category]
		if !limit.IsPositive() {
			continue
		}

		spent := spend[latest][category]
		ratio := spent.Div(limit)
		percent := ratio.Mul(decimal.NewFromInt(100)).Round(percentPlaces)

		switch {
		case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
			insights = append(insights, models.Insight{
				Type:     models.InsightBudgetAlert,
				Title:    fmt.Sprintf("%s budget exceeded", category),
				Message:  fmt.Sprintf("Spent %s of the %s monthly budget for %s in %s (%s%%).", spent.StringFixed(2), limit.StringFixed(2), category, latest, percent.String()),
				Priority: models.PriorityHigh,
				Action:   fmt.Sprintf("Review recent %s spending or raise the budget.", category),
				Category: category,
			})
		case ratio.GreaterThanOrEqual(threshold):
			insights = append(insights, models.Insight{
				Type:     models.InsightBudgetWarning,
				Title:    fmt.Sprintf("%s budget almost used", category),
				Message:  fmt.Sprintf("Spent %s of the %s monthly budget for %s in %s (%s%%).", spent.StringFixed(2), limit.StringFixed(2), category, latest, percent.String()),
				Priority: models.PriorityMedium,
				Action:   fmt.Sprintf("Slow down %s spending for the rest of the month.", category),
				Category: category,
			})
		}
	}

	return insights
}

// anomalyInsights surfaces the most extreme high and medium anomaly of each category
func (s *insightService) anomalyInsights(transactions []models.Transaction) []models.Insight {
	anomalies, err := s.anomaly.DetectAnomalies(transactions, models.AnomalyScopeCategory)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	insights := make([]models.Insight, 0)
	for _, anomaly := range anomalies {
		var priority models.Priority
		switch anomaly.Severity {
		case models.SeverityHigh:
			priority = models.PriorityHigh
		case models.SeverityMedium:
			priority = models.PriorityMedium
		default:
			continue
		}

		// Anomalies arrive ordered by severity then deviation, so the first one
		// per category and tier is the most extreme.
		key := anomaly.Category + "|" + string(anomaly.Severity)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		insights = append(insights, models.Insight{
			Type:     models.InsightAnomaly,
			Title:    fmt.Sprintf("Unusual %s transaction", anomaly.Category),
			Message:  fmt.Sprintf("A %s expense on %s is %s standard deviations from the usual %s.", anomaly.Amount.StringFixed(2), anomaly.Date, anomaly.DeviationSigma.StringFixed(1), anomaly.BaselineMean.StringFixed(2)),
			Priority: priority,
			Action:   "Check that this transaction is expected.",
			Category: anomaly.Category,
		})
	}

	return insights
}

func (s *insightService) trendInsights(monthly []models.PeriodBucket) []models.Insight {
	summary, err := s.forecast.Forecast(Series(monthly, models.SeriesExpense), 1)
	if err != nil || summary.Trend != models.TrendIncreasing {
		return nil
	}

	return []models.Insight{{
		Type:     models.InsightTrend,
		Title:    "Monthly spending is rising",
		Message:  fmt.Sprintf("Expenses grow by about %s per month across %d months.", summary.Slope.StringFixed(2), len(monthly)),
		Priority: models.PriorityMedium,
		Action:   "Look for categories that drive the increase.",
	}}
}

func (s *insightService) seasonalInsights(monthly []models.PeriodBucket) []models.Insight {
	result := s.seasonality.DetectSeasonality(PeriodValues(monthly, models.SeriesExpense))
	if !result.HasSeasonality || result.Confidence != models.SeasonalityConfidenceHigh {
		return nil
	}

	peak := time.Month(result.PeakMonth).String()
	return []models.Insight{{
		Type:     models.InsightSeasonal,
		Title:    fmt.Sprintf("Spending peaks in %s", peak),
		Message:  fmt.Sprintf("%s spending runs %s times the monthly average across %d years.", peak, result.Indices[result.PeakMonth].StringFixed(2), result.Years),
		Priority: models.PriorityLow,
		Action:   fmt.Sprintf("Set money aside ahead of %s.", peak),
	}}
}

func (s *insightService) patternInsights(transactions []models.Transaction) []models.Insight {
	total, count := MonthlyTotal(s.recurring.DetectRecurring(transactions), models.TransactionTypeExpense)
	if count == 0 {
		return nil
	}

	return []models.Insight{{
		Type:     models.InsightPattern,
		Title:    "Recurring monthly payments",
		Message:  fmt.Sprintf("%d recurring monthly payments total %s per month.", count, total.StringFixed(2)),
		Priority: models.PriorityLow,
		Action:   "Review subscriptions you no longer use.",
	}}
}

func buildReport(insights []models.Insight) *models.InsightReport {
	sort.SliceStable(insights, func(i, j int) bool {
		a, b := insights[i], insights[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.Type.Order() != b.Type.Order() {
			return a.Type.Order() < b.Type.Order()
		}
		return a.Category < b.Category
	})

	report := &models.InsightReport{
		All: insights,
		ByPriority: models.InsightsByPriority{
			High:   make([]models.Insight, 0),
			Medium: make([]models.Insight, 0),
			Low:    make([]models.Insight, 0),
		},
	}
	for _, insight := range insights {
		switch insight.Priority {
		case models.PriorityHigh:
			report.ByPriority.High = append(report.ByPriority.High, insight)
		case models.PriorityMedium:
			report.ByPriority.Medium = append(report.ByPriority.Medium, insight)
		default:
			report.ByPriority.Low = append(report.ByPriority.Low, insight)
		}
	}

	return report
}

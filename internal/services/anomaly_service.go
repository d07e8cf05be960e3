package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"finance-dashboard/internal/models"
)

var ErrInvalidScope = errors.New("anomaly scope must be category or global")

const globalScopeKey = "*"

type anomalyService struct {
	opts AnomalyOptions
}

type scoredTransaction struct {
	txn *models.Transaction
	day time.Time
}

// runningBaseline accumulates the moments of every earlier amount in a scope
type runningBaseline struct {
	count int
	sum   float64
	sumSq float64
}

func (b *runningBaseline) add(v float64) {
	b.count++
	b.sum += v
	b.sumSq += v * v
}

func (b *runningBaseline) meanAndStdDev() (float64, float64) {
	if b.count == 0 {
		return 0, 0
	}
	m := b.sum / float64(b.count)
	variance := b.sumSq/float64(b.count) - m*m
	if variance < 0 {
		variance = 0
	}
	return m, math.Sqrt(variance)
}

// NewAnomalyService creates the anomaly detector
func NewAnomalyService(opts AnomalyOptions) AnomalyServiceInterface {
	return &anomalyService{opts: opts}
}

// DetectAnomalies flags expenses that deviate from the baseline of all earlier
// expenses in the same scope. Results are ordered high to low severity, then by
// deviation.
func (s *anomalyService) DetectAnomalies(transactions []models.Transaction, scope models.AnomalyScope) ([]models.Anomaly, error) {
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}

	expenses := make([]scoredTransaction, 0, len(transactions))
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		day, ok := txn.ParseDate()
		if !ok {
			continue
		}
		expenses = append(expenses, scoredTransaction{txn: txn, day: day})
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		if !expenses[i].day.Equal(expenses[j].day) {
			return expenses[i].day.Before(expenses[j].day)
		}
		return expenses[i].txn.ID.String() < expenses[j].txn.ID.String()
	})

	baselines := make(map[string]*runningBaseline)
	anomalies := make([]models.Anomaly, 0)

	for _, expense := range expenses {
		key := globalScopeKey
		if scope == models.AnomalyScopeCategory {
			key = expense.txn.Category
		}

		baseline, ok := baselines[key]
		if !ok {
			baseline = &runningBaseline{}
			baselines[key] = baseline
		}

		amount := expense.txn.Amount.InexactFloat64()
		if anomaly, flagged := s.score(expense, amount, baseline); flagged {
			anomalies = append(anomalies, anomaly)
		}
		baseline.add(amount)
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		a, b := anomalies[i], anomalies[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if !a.DeviationSigma.Equal(b.DeviationSigma) {
			return a.DeviationSigma.GreaterThan(b.DeviationSigma)
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.TransactionID.String() < b.TransactionID.String()
	})

	return anomalies, nil
}

func (s *anomalyService) score(expense scoredTransaction, amount float64, baseline *runningBaseline) (models.Anomaly, bool) {
	if baseline.count < s.opts.MinSamples {
		return models.Anomaly{}, false
	}

	m, sd := baseline.meanAndStdDev()
	if math.Abs(m) < epsilon && sd < epsilon {
		return models.Anomaly{}, false
	}

	// A near-constant history would otherwise turn cents of drift into huge sigmas.
	sd = math.Max(sd, s.opts.MinRelativeStdDev*math.Abs(m))

	z := math.Abs(amount-m) / sd
	severity, ok := s.severity(z)
	if !ok {
		return models.Anomaly{}, false
	}

	return models.Anomaly{
		TransactionID:  expense.txn.ID,
		Date:           expense.day.Format(dayKeyLayout),
		Category:       expense.txn.Category,
		Account:        expense.txn.Account,
		Amount:         expense.txn.Amount,
		BaselineMean:   toAmount(m),
		DeviationSigma: toRatio(z),
		Severity:       severity,
	}, true
}

func (s *anomalyService) severity(z float64) (models.Severity, bool) {
	switch {
	case z >= s.opts.HighSigma:
		return models.SeverityHigh, true
	case z >= s.opts.MediumSigma:
		return models.SeverityMedium, true
	case z >= s.opts.LowSigma:
		return models.SeverityLow, true
	default:
		return "", false
	}
}

package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

type recurringService struct {
	opts RecurringOptions
}

type occurrence struct {
	day    time.Time
	amount float64
}

type recurringGroup struct {
	category    string
	account     string
	txnType     string
	occurrences []occurrence
}

// NewRecurringService creates the recurring pattern detector
func NewRecurringService(opts RecurringOptions) RecurringServiceInterface {
	return &recurringService{opts: opts}
}

// DetectRecurring groups transactions by category and account, splits each group
// into amount clusters and keeps the clusters that repeat at a regular interval
func (s *recurringService) DetectRecurring(transactions []models.Transaction) []models.RecurringPattern {
	groups := make(map[string]*recurringGroup)
	order := make([]string, 0)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsIncome() && !txn.IsExpense() {
			continue
		}
		if !txn.Amount.IsPositive() {
			continue
		}
		day, ok := txn.ParseDate()
		if !ok {
			continue
		}

		key := fmt.Sprintf("%s|%s|%s", txn.Category, txn.Account, txn.Type)
		group, exists := groups[key]
		if !exists {
			group = &recurringGroup{category: txn.Category, account: txn.Account, txnType: txn.Type}
			groups[key] = group
			order = append(order, key)
		}
		group.occurrences = append(group.occurrences, occurrence{day: day, amount: txn.Amount.InexactFloat64()})
	}

	patterns := make([]models.RecurringPattern, 0)
	for _, groupKey := range order {
		for _, cluster := range s.clusterByAmount(groups[groupKey]) {
			if pattern, ok := s.evaluate(cluster); ok {
				patterns = append(patterns, pattern)
			}
		}
	}

	sort.Slice(patterns, func(i, j int) bool {
		if !patterns[i].Confidence.Equal(patterns[j].Confidence) {
			return patterns[i].Confidence.GreaterThan(patterns[j].Confidence)
		}
		return patterns[i].Key < patterns[j].Key
	})

	return patterns
}

type amountCluster struct {
	key string
	*recurringGroup
}

// clusterByAmount walks the amounts in ascending order. A cluster is anchored at
// its smallest amount and takes every following amount within AmountTolerance of
// that anchor, so slow price drift stays in one cluster.
func (s *recurringService) clusterByAmount(group *recurringGroup) []amountCluster {
	sorted := make([]occurrence, len(group.occurrences))
	copy(sorted, group.occurrences)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].amount < sorted[j].amount
	})

	clusters := make([]amountCluster, 0, 1)
	var current *recurringGroup
	anchor := 0.0
	for _, occ := range sorted {
		if current == nil || occ.amount > anchor*(1+s.opts.AmountTolerance) {
			anchor = occ.amount
			current = &recurringGroup{category: group.category, account: group.account, txnType: group.txnType}
			clusters = append(clusters, amountCluster{
				key:            fmt.Sprintf("%s|%s|%.2f", group.category, group.account, anchor),
				recurringGroup: current,
			})
		}
		current.occurrences = append(current.occurrences, occ)
	}
	return clusters
}

func (s *recurringService) evaluate(cluster amountCluster) (models.RecurringPattern, bool) {
	group := cluster.recurringGroup
	n := len(group.occurrences)
	if n < 2 {
		return models.RecurringPattern{}, false
	}

	sort.SliceStable(group.occurrences, func(i, j int) bool {
		return group.occurrences[i].day.Before(group.occurrences[j].day)
	})

	gaps := make([]float64, 0, n-1)
	amounts := make([]float64, 0, n)
	for i, occ := range group.occurrences {
		amounts = append(amounts, occ.amount)
		if i > 0 {
			gaps = append(gaps, occ.day.Sub(group.occurrences[i-1].day).Hours()/hoursPerDay)
		}
	}

	frequency := median(gaps)
	if frequency < 1 {
		return models.RecurringPattern{}, false
	}

	gapCV := coefficientOfVariation(gaps)
	if gapCV > s.opts.MaxGapCV {
		return models.RecurringPattern{}, false
	}

	regularity := 1 - gapCV/s.opts.MaxGapCV
	occurrenceScore := 1 - 1/float64(n)
	amountStability := math.Max(0, 1-coefficientOfVariation(amounts)/s.opts.AmountTolerance)
	confidence := 0.5*regularity + 0.3*occurrenceScore + 0.2*amountStability

	last := group.occurrences[n-1].day
	next := last.AddDate(0, 0, int(math.Round(frequency)))

	return models.RecurringPattern{
		Key:           cluster.key,
		Category:      group.category,
		Account:       group.account,
		Type:          group.txnType,
		Amount:        toAmount(mean(amounts)),
		FrequencyDays: toRatio(frequency),
		IsMonthly:     frequency >= s.opts.MonthlyMinDays && frequency <= s.opts.MonthlyMaxDays,
		Occurrences:   n,
		NextExpected:  next.Format(dayKeyLayout),
		Confidence:    toRatio(confidence),
	}, true
}

// MonthlyTotal sums the amounts of the monthly patterns of one transaction type
func MonthlyTotal(patterns []models.RecurringPattern, txnType string) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for i := range patterns {
		if patterns[i].IsMonthly && patterns[i].Type == txnType {
			total = total.Add(patterns[i].Amount)
			count++
		}
	}
	return total, count
}

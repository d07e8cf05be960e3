package services

import (
	"errors"
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidGranularity = errors.New("granularity must be one of day, month, year")

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	yearKeyLayout  = "2006"
)

type periodAggregator struct{}

// NewPeriodAggregator creates the period aggregator
func NewPeriodAggregator() PeriodAggregatorInterface {
	return &periodAggregator{}
}

// Aggregate buckets transactions into periods in a single pass.
// Rows with unparsable dates and In-pocket rows are skipped. With a date range every
// period inside it is emitted, zero-filled where nothing happened; without one only
// observed periods are emitted.
func (a *periodAggregator) Aggregate(transactions []models.Transaction, granularity models.Granularity, dateRange *models.DateRange) ([]models.PeriodBucket, error) {
	if !granularity.IsValid() {
		return nil, ErrInvalidGranularity
	}

	buckets := make(map[string]*models.PeriodBucket)

	if dateRange != nil {
		for _, key := range periodKeysInRange(*dateRange, granularity) {
			buckets[key] = newBucket(key)
		}
	}

	for i := range transactions {
		txn := &transactions[i]

		if txn.IsInPocket() {
			continue
		}

		day, ok := txn.ParseDate()
		if !ok {
			continue
		}

		if dateRange != nil && !dateRange.Contains(day) {
			continue
		}

		key := periodKey(day, granularity)
		bucket, exists := buckets[key]
		if !exists {
			bucket = newBucket(key)
			buckets[key] = bucket
		}

		bucket.TransactionCount++
		switch txn.Type {
		case models.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(txn.Amount)
		case models.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(txn.Amount)
		}
	}

	result := make([]models.PeriodBucket, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Net = bucket.Income.Sub(bucket.Expense)
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodKey < result[j].PeriodKey
	})

	return result, nil
}

// Series extracts one total per bucket, in bucket order
func Series(buckets []models.PeriodBucket, kind models.SeriesKind) []decimal.Decimal {
	series := make([]decimal.Decimal, len(buckets))
	for i := range buckets {
		series[i] = buckets[i].Value(kind)
	}
	return series
}

// PeriodValues maps period keys to the total selected by kind
func PeriodValues(buckets []models.PeriodBucket, kind models.SeriesKind) map[string]decimal.Decimal {
	values := make(map[string]decimal.Decimal, len(buckets))
	for i := range buckets {
		values[buckets[i].PeriodKey] = buckets[i].Value(kind)
	}
	return values
}

func newBucket(key string) *models.PeriodBucket {
	return &models.PeriodBucket{
		PeriodKey: key,
		Income:    decimal.Zero,
		Expense:   decimal.Zero,
		Net:       decimal.Zero,
	}
}

func periodKey(day time.Time, granularity models.Granularity) string {
	switch granularity {
	case models.GranularityDay:
		return day.Format(dayKeyLayout)
	case models.GranularityYear:
		return day.Format(yearKeyLayout)
	default:
		return day.Format(monthKeyLayout)
	}
}

func periodKeysInRange(dateRange models.DateRange, granularity models.Granularity) []string {
	start := time.Date(dateRange.Start.Year(), dateRange.Start.Month(), dateRange.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(dateRange.End.Year(), dateRange.End.Month(), dateRange.End.Day(), 0, 0, 0, 0, time.UTC)
	if start.After(end) {
		return nil
	}

	var keys []string
	switch granularity {
	case models.GranularityDay:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			keys = append(keys, d.Format(dayKeyLayout))
		}
	case models.GranularityMonth:
		for d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !d.After(end); d = d.AddDate(0, 1, 0) {
			keys = append(keys, d.Format(monthKeyLayout))
		}
	case models.GranularityYear:
		for y := start.Year(); y <= end.Year(); y++ {
			keys = append(keys, time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Format(yearKeyLayout))
		}
	}
	return keys
}

// ObservedRange spans the first to the last dated transaction that counts toward
// period totals, or nil when there is none. Aggregating over it zero-fills the
// periods in between.
func ObservedRange(transactions []models.Transaction) *models.DateRange {
	var observed *models.DateRange
	for i := range transactions {
		txn := &transactions[i]
		if txn.IsInPocket() {
			continue
		}
		day, ok := txn.ParseDate()
		if !ok {
			continue
		}
		switch {
		case observed == nil:
			observed = &models.DateRange{Start: day, End: day}
		case day.Before(observed.Start):
			observed.Start = day
		case day.After(observed.End):
			observed.End = day
		}
	}
	return observed
}

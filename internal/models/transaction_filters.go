package models

import (
	"time"
)

// TransactionFilters contains filtering options for transaction queries.
// StartDate and EndDate are applied in memory by the analytics layer because stored
// dates are raw strings of varying layout.
type TransactionFilters struct {
	Account   string
	Category  string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

// DateRange is an inclusive calendar range
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateRange returns the filters' date bounds as a range, or nil unless both are set
func (f TransactionFilters) DateRange() *DateRange {
	if f.StartDate == nil || f.EndDate == nil {
		return nil
	}
	return &DateRange{Start: *f.StartDate, End: *f.EndDate}
}

// Contains reports whether day falls inside the range, compared by calendar day
func (r DateRange) Contains(day time.Time) bool {
	start := truncateToDay(r.Start)
	end := truncateToDay(r.End)
	day = truncateToDay(day)
	return !day.Before(start) && !day.After(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

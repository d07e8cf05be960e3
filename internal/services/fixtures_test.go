package services

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTxn(date, txnType, category string, amount float64) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Type:     txnType,
		Category: category,
		Account:  "Checking",
	}
}

func expense(date, category string, amount float64) models.Transaction {
	return newTxn(date, models.TransactionTypeExpense, category, amount)
}

func income(date, category string, amount float64) models.Transaction {
	return newTxn(date, models.TransactionTypeIncome, category, amount)
}

func decimals(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func constantSeries(value float64, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.NewFromFloat(value)
	}
	return out
}

// monthlyExpenses creates one expense on the given day of each month starting at start
func monthlyExpenses(start time.Time, months, day int, category string, amount float64) []models.Transaction {
	out := make([]models.Transaction, 0, months)
	for i := 0; i < months; i++ {
		d := time.Date(start.Year(), start.Month()+time.Month(i), day, 0, 0, 0, 0, time.UTC)
		out = append(out, expense(d.Format("2006-01-02"), category, amount))
	}
	return out
}

func dateOf(raw string) time.Time {
	t, _ := time.Parse("2006-01-02", raw)
	return t
}

func assertDecimal(expected float64, actual decimal.Decimal) bool {
	return actual.Equal(decimal.NewFromFloat(expected))
}

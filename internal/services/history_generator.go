package services

import (
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	primaryAccount = "Checking"
	savingsAccount = "Savings"

	salaryDay         = 25
	rentDay           = 1
	pocketMoveDay     = 26
	maxDailyPurchases = 3

	baseSalary       = 4200.00
	monthlyRent      = 1450.00
	pocketMoveAmount = 500.00

	// decemberLift scales discretionary spending in December
	decemberLift = 1.6
	novemberLift = 1.15
)

type merchantInfo struct {
	Name     string
	Category string
}

type subscription struct {
	merchant string
	category string
	day      int
	amount   float64
}

type historyGenerator struct {
	faker         *gofakeit.Faker
	merchantPool  []merchantInfo
	subscriptions []subscription
}

// NewHistoryGenerator creates a generator whose output depends only on seed
func NewHistoryGenerator(seed uint64) HistoryGeneratorInterface {
	return &historyGenerator{
		faker:         gofakeit.New(seed),
		merchantPool:  initializeMerchantPool(),
		subscriptions: initializeSubscriptions(),
	}
}

func initializeMerchantPool() []merchantInfo {
	return []merchantInfo{
		{"Whole Foods Market", models.CategoryGroceries},
		{"Trader Joe's", models.CategoryGroceries},
		{"Safeway", models.CategoryGroceries},
		{"Costco Wholesale", models.CategoryGroceries},

		{"Starbucks", models.CategoryDining},
		{"Chipotle Mexican Grill", models.CategoryDining},
		{"Panera Bread", models.CategoryDining},
		{"Five Guys", models.CategoryDining},

		{"Uber", models.CategoryTransportation},
		{"Shell", models.CategoryTransportation},
		{"Metro Transit", models.CategoryTransportation},

		{"Amazon.com", models.CategoryShopping},
		{"Target", models.CategoryShopping},
		{"IKEA", models.CategoryShopping},

		{"AMC Theaters", models.CategoryEntertainment},
		{"Steam", models.CategoryEntertainment},

		{"CVS Pharmacy", models.CategoryHealth},
		{"Walgreens", models.CategoryHealth},
	}
}

func initializeSubscriptions() []subscription {
	return []subscription{
		{"Netflix", models.CategoryEntertainment, 7, 15.49},
		{"Spotify", models.CategoryEntertainment, 12, 10.99},
		{"City Gym", models.CategoryHealth, 3, 39.00},
		{"Comcast Xfinity", models.CategoryUtilities, 15, 79.99},
	}
}

var amountRanges = map[string][2]float64{
	models.CategoryGroceries:      {15.00, 140.00},
	models.CategoryDining:         {8.00, 60.00},
	models.CategoryTransportation: {5.00, 55.00},
	models.CategoryShopping:       {20.00, 180.00},
	models.CategoryEntertainment:  {10.00, 45.00},
	models.CategoryHealth:         {8.00, 70.00},
}

// GenerateHistory produces every transaction between startDate and endDate
// inclusive, ordered by date
func (g *historyGenerator) GenerateHistory(startDate, endDate time.Time) []models.Transaction {
	start := truncateDay(startDate)
	end := truncateDay(endDate)
	if end.Before(start) {
		return []models.Transaction{}
	}

	transactions := make([]models.Transaction, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		transactions = append(transactions, g.scheduledTransactions(day)...)
		transactions = append(transactions, g.dailyPurchases(day)...)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date < transactions[j].Date
	})

	return transactions
}

// GenerateBudgets returns monthly limits that the generated history mostly respects
func (g *historyGenerator) GenerateBudgets() []models.Budget {
	limits := []struct {
		category string
		limit    int64
	}{
		{models.CategoryGroceries, 900},
		{models.CategoryDining, 450},
		{models.CategoryTransportation, 400},
		{models.CategoryShopping, 650},
		{models.CategoryEntertainment, 250},
	}

	budgets := make([]models.Budget, 0, len(limits))
	for _, l := range limits {
		budgets = append(budgets, models.Budget{
			ID:           g.newID(),
			Category:     l.category,
			MonthlyLimit: decimal.NewFromInt(l.limit),
		})
	}
	return budgets
}

// scheduledTransactions returns the fixed monthly rows that fall on day
func (g *historyGenerator) scheduledTransactions(day time.Time) []models.Transaction {
	var transactions []models.Transaction

	switch day.Day() {
	case salaryDay:
		transactions = append(transactions, g.newTransaction(day, models.TransactionTypeIncome, models.CategorySalary, "ACME Corporation", "Direct Deposit - Salary Payment", baseSalary))
	case rentDay:
		transactions = append(transactions, g.newTransaction(day, models.TransactionTypeExpense, models.CategoryHousing, "Oakwood Apartments", "Monthly Rent", monthlyRent))
	case pocketMoveDay:
		out := g.newTransaction(day, models.TransactionTypeExpense, models.InPocketCategory, savingsAccount, "Move to savings pocket", pocketMoveAmount)
		in := g.newTransaction(day, models.TransactionTypeIncome, models.InPocketCategory, primaryAccount, "Move from checking pocket", pocketMoveAmount)
		in.Account = savingsAccount
		transactions = append(transactions, out, in)
	}

	for _, sub := range g.subscriptions {
		if day.Day() == sub.day {
			transactions = append(transactions, g.newTransaction(day, models.TransactionTypeExpense, sub.category, sub.merchant, "Subscription - "+sub.merchant, sub.amount))
		}
	}

	return transactions
}

func (g *historyGenerator) dailyPurchases(day time.Time) []models.Transaction {
	count := g.faker.IntRange(0, maxDailyPurchases)
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		merchant := g.merchantPool[g.faker.IntRange(0, len(g.merchantPool)-1)]
		amount := g.generateAmount(merchant.Category) * seasonalLift(day.Month())
		transactions = append(transactions, g.newTransaction(day, models.TransactionTypeExpense, merchant.Category, merchant.Name, "Purchase at "+merchant.Name, amount))
	}

	return transactions
}

func (g *historyGenerator) generateAmount(category string) float64 {
	r, exists := amountRanges[category]
	if !exists {
		r = [2]float64{10.00, 100.00}
	}
	return g.faker.Float64Range(r[0], r[1])
}

func (g *historyGenerator) newTransaction(day time.Time, txnType, category, merchant, description string, amount float64) models.Transaction {
	return models.Transaction{
		ID:          g.newID(),
		Date:        day.Format(dayKeyLayout),
		Amount:      decimal.NewFromFloat(amount).Round(amountPlaces),
		Type:        txnType,
		Category:    category,
		Subcategory: merchant,
		Account:     primaryAccount,
		Description: description,
	}
}

// newID draws the id from the seeded faker so histories are reproducible
func (g *historyGenerator) newID() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

func seasonalLift(month time.Month) float64 {
	switch month {
	case time.December:
		return decemberLift
	case time.November:
		return novemberLift
	default:
		return 1
	}
}

package models

// Categories used by the synthetic history and the default budgets.
// Stored categories are free-form; these are not enforced.
const (
	CategorySalary         = "Salary"
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryHealth         = "Health"
	CategoryTravel         = "Travel"
)

package repositories

import (
	"finance-dashboard/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	CreateBatch(transactions []models.Transaction) error
	ReplaceAll(transactions []models.Transaction) error
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)
	Count() (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	GetAll() ([]models.Budget, error)
	GetByCategory(category string) (*models.Budget, error)
	Upsert(budget *models.Budget) error
}

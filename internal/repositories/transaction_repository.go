package repositories

import (
	"fmt"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetWithFilters retrieves every transaction matching the column filters.
// Date bounds are left to the caller since stored dates are raw strings.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})

	if filters.Account != "" {
		query = query.Where("account = ?", filters.Account)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC").Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions with filters: %w", err)
	}

	return transactions, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// ReplaceAll deletes every stored transaction and inserts the given ones in a
// single database transaction. A failed insert leaves the previous rows in place.
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		if len(transactions) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&transactions, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

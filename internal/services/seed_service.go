package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

var ErrInvalidSeedRange = errors.New("seed end date is before start date")

// TransactionLoader bulk-writes transactions outside the repository, e.g. with COPY.
// ReplaceTransactions deletes the stored rows in the same database transaction as the load.
type TransactionLoader interface {
	CopyTransactions(ctx context.Context, transactions []models.Transaction) (int, error)
	ReplaceTransactions(ctx context.Context, transactions []models.Transaction) (int, error)
}

// SeedServiceInterface writes a synthetic history and budget set into the store
type SeedServiceInterface interface {
	Seed(ctx context.Context, req SeedRequest) (*SeedResult, error)
}

type SeedRequest struct {
	Start time.Time
	End   time.Time
	// Reset replaces every stored transaction; the delete and the load commit together
	Reset bool
}

type SeedResult struct {
	Transactions int
	// Stored is the row count of the store once the seed committed
	Stored       int64
	Budgets      int
	Duration     time.Duration
}

type seedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	generator       HistoryGeneratorInterface
	loader          TransactionLoader
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSeedService creates the seeder. A nil loader writes through the repository in one batch.
func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	generator HistoryGeneratorInterface,
	loader TransactionLoader,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &seedService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		generator:       generator,
		loader:          loader,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *seedService) Seed(ctx context.Context, req SeedRequest) (*SeedResult, error) {
	if req.End.Before(req.Start) {
		return nil, ErrInvalidSeedRange
	}
	start := time.Now()

	transactions := s.generator.GenerateHistory(req.Start, req.End)

	written, err := s.write(ctx, transactions, req.Reset)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordGauge("seed.transactions", float64(written), nil)

	stored, err := s.transactionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	budgets := s.generator.GenerateBudgets()
	for i := range budgets {
		if err := s.budgetRepo.Upsert(&budgets[i]); err != nil {
			return nil, fmt.Errorf("failed to upsert budget %s: %w", budgets[i].Category, err)
		}
	}

	result := &SeedResult{
		Transactions: written,
		Stored:       stored,
		Budgets:      len(budgets),
		Duration:     time.Since(start),
	}
	s.logger.Info("seed completed",
		"transactions", result.Transactions,
		"stored", result.Stored,
		"reset", req.Reset,
		"budgets", result.Budgets,
		"start", req.Start.Format("2006-01-02"),
		"end", req.End.Format("2006-01-02"),
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// write loads the generated rows through the bulk loader when one is configured
// and through the repository otherwise. With reset the previous rows are deleted
// in the same database transaction.
func (s *seedService) write(ctx context.Context, transactions []models.Transaction, reset bool) (int, error) {
	switch {
	case s.loader != nil && reset:
		n, err := s.loader.ReplaceTransactions(ctx, transactions)
		if err != nil {
			return 0, fmt.Errorf("failed to replace transactions: %w", err)
		}
		return n, nil
	case s.loader != nil:
		n, err := s.loader.CopyTransactions(ctx, transactions)
		if err != nil {
			return 0, fmt.Errorf("failed to copy transactions: %w", err)
		}
		return n, nil
	case reset:
		if err := s.transactionRepo.ReplaceAll(transactions); err != nil {
			return 0, fmt.Errorf("failed to replace transactions: %w", err)
		}
	default:
		if err := s.transactionRepo.CreateBatch(transactions); err != nil {
			return 0, fmt.Errorf("failed to insert transactions: %w", err)
		}
	}
	return len(transactions), nil
}

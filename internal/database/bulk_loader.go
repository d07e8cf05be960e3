package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var transactionColumns = []string{
	"id", "date", "amount", "type", "category", "subcategory",
	"account", "description", "created_at", "updated_at",
}

// BulkLoader streams large transaction batches into PostgreSQL with COPY.
// It holds its own lib/pq connection pool separate from the gorm one.
type BulkLoader struct {
	db *sql.DB
}

// OpenBulkLoader connects to the configured database through lib/pq and pings it
func OpenBulkLoader(ctx context.Context, cfg *config.DatabaseConfig) (*BulkLoader, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open bulk loader connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewBulkLoader(db), nil
}

func NewBulkLoader(db *sql.DB) *BulkLoader {
	return &BulkLoader{db: db}
}

// CopyTransactions inserts every transaction in one COPY statement inside a
// single database transaction. Rows get the same defaults and validation as
// the gorm create hook; the first invalid row aborts the whole load.
func (l *BulkLoader) CopyTransactions(ctx context.Context, transactions []models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}
	return l.load(ctx, transactions, false)
}

// ReplaceTransactions deletes every stored transaction and copies the given
// ones in the same database transaction, so a failed copy keeps the old rows.
func (l *BulkLoader) ReplaceTransactions(ctx context.Context, transactions []models.Transaction) (int, error) {
	return l.load(ctx, transactions, true)
}

func (l *BulkLoader) load(ctx context.Context, transactions []models.Transaction, replace bool) (int, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin copy: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
			return 0, fmt.Errorf("failed to delete transactions: %w", describePQError(err))
		}
	}
	if len(transactions) > 0 {
		if err := copyRows(ctx, tx, transactions); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit copy: %w", err)
	}

	slog.Info("transactions copied", "count", len(transactions), "replace", replace)
	return len(transactions), nil
}

func copyRows(ctx context.Context, tx *sql.Tx, transactions []models.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("transactions", transactionColumns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", describePQError(err))
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range transactions {
		t := &transactions[i]
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = now
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}

		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Date, t.Amount, t.Type, t.Category, t.Subcategory,
			t.Account, t.Description, t.CreatedAt, t.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to copy transaction %d: %w", i, describePQError(err))
		}
	}

	// an argument-less exec flushes the buffered rows
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to flush copy: %w", describePQError(err))
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", describePQError(err))
	}
	return nil
}

func (l *BulkLoader) Close() error {
	return l.db.Close()
}

// describePQError adds the constraint or column PostgreSQL blamed, keeping the original error wrapped
func describePQError(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}

	detail := pqErr.Constraint
	if detail == "" {
		detail = pqErr.Column
	}
	if detail == "" {
		return fmt.Errorf("%s (%s): %w", pqErr.Code.Name(), pqErr.Code, err)
	}
	return fmt.Errorf("%s on %s (%s): %w", pqErr.Code.Name(), detail, pqErr.Code, err)
}

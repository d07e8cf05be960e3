package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"
)

const dateLayout = "2006-01-02"

func main() {
	now := time.Now().UTC()
	var (
		seed    = flag.Uint64("seed", 42, "generator seed; equal seeds produce equal histories")
		startS  = flag.String("start", now.AddDate(-3, 0, 0).Format(dateLayout), "first day of the history (YYYY-MM-DD)")
		endS    = flag.String("end", now.Format(dateLayout), "last day of the history (YYYY-MM-DD)")
		reset   = flag.Bool("reset", false, "delete existing transactions first")
		useCopy = flag.Bool("copy", true, "bulk load with PostgreSQL COPY instead of batched inserts")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	start, err := time.Parse(dateLayout, *startS)
	if err != nil {
		logger.Error("invalid start date", "start", *startS, "error", err)
		os.Exit(2)
	}
	end, err := time.Parse(dateLayout, *endS)
	if err != nil {
		logger.Error("invalid end date", "end", *endS, "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Load(), logger, *seed, services.SeedRequest{Start: start, End: end, Reset: *reset}, *useCopy); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, seed uint64, req services.SeedRequest, useCopy bool) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var loader services.TransactionLoader
	if useCopy {
		bulk, err := database.OpenBulkLoader(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer bulk.Close()
		loader = bulk
	}

	seeder := services.NewSeedService(
		repositories.NewTransactionRepository(db.DB),
		repositories.NewBudgetRepository(db.DB),
		services.NewHistoryGenerator(seed),
		loader,
		services.NewPrometheusMetrics(),
		logger,
	)

	_, err = seeder.Seed(ctx, req)
	return err
}

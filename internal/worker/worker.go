package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaigner/internal/campaign"
	"campaigner/internal/config"
	"campaigner/pkg/beefree"
	"campaigner/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job runner.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// RateLimitBackoff is how long a throttled conversion is snoozed.
	RateLimitBackoff time.Duration
	// MaxAttempts bounds how many backoffs a throttled conversion gets.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:       cfg.Worker.MaxWorkers,
		RateLimitBackoff: cfg.Worker.RateLimitBackoff,
		MaxAttempts:      cfg.Worker.MaxAttempts,
	}
}

// Workers registers every worker of the service.
func Workers(converter beefree.Client, campaigns campaign.Manager, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewConvertTemplateWorker(
		converter,
		campaigns,
		opts.RateLimitBackoff,
		opts.RateLimitBackoff*time.Duration(max(opts.MaxAttempts, 1)),
	))

	return workers
}

// Start creates and starts a river client working the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	workers *river.Workers,
	opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(opts.MaxWorkers, 1)},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

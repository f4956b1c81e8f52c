// Package worker runs the river job queue that processes background work of
// the intake service.
package worker

import (
	"context"
	"fmt"
	"intake/pkg/blob"
	"intake/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// DefaultMaxWorkers is used when no positive worker count is configured.
const DefaultMaxWorkers = 10

// Workers registers every job worker of the service.
func Workers(blobs blob.Store) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDiscardBlobWorker(blobs))

	return workers
}

// Start creates and starts a river client on dbPool. The caller stops it on
// shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, blobs blob.Store, maxWorkers int) (*river.Client[pgx.Tx], error) {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(blobs),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

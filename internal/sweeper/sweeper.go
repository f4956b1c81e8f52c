// Package sweeper cleans up blobs left behind by uploads whose ingestion
// failed. Relational rows are never touched; only the file store is.
package sweeper

import (
	"context"
	"intake/internal/config"
	"intake/pkg/logger"
	"intake/pkg/serrors"
	"intake/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Options configure discard jobs.
type Options struct {
	// Delay postpones the deletion after the discard request.
	Delay time.Duration
	// MaxAttempts bounds retries of a failing deletion.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Delay:       cfg.Worker.DiscardDelay,
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type sweeper struct {
	options Options
	storage storage.JobStorage
}

func (s sweeper) Discard(ctx context.Context, locator string) error {
	if locator == "" {
		return nil
	}

	ctx = logger.WithFields(ctx, zap.String("locator", locator))

	added, err := s.storage.AddJob(ctx, DiscardBlobArgs{
		Locator:     locator,
		maxAttempts: s.options.MaxAttempts,
		delay:       s.options.Delay,
	}, nil)
	if err != nil {
		return serrors.Wrap(serrors.ErrStoreFailure, err, "could not schedule blob discard")
	}

	if !added {
		logger.Debug(ctx, "blob discard already scheduled")

		return nil
	}

	logger.Info(ctx, "blob discard scheduled", zap.Duration("delay", s.options.Delay))

	return nil
}

// New creates a Sweeper enqueuing jobs through storage.
func New(storage storage.JobStorage, options Options) Sweeper {
	return &sweeper{
		options: options,
		storage: storage,
	}
}

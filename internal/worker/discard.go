package worker

import (
	"context"
	"fmt"
	"intake/internal/sweeper"
	"intake/pkg/blob"
	"intake/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DiscardBlobWorker deletes blobs that were written by an upload whose
// ingestion failed. A blob that is already gone counts as deleted.
type DiscardBlobWorker struct {
	river.WorkerDefaults[sweeper.DiscardBlobArgs]

	blobs blob.Store
}

func NewDiscardBlobWorker(blobs blob.Store) *DiscardBlobWorker {
	return &DiscardBlobWorker{
		blobs: blobs,
	}
}

func (d *DiscardBlobWorker) Work(ctx context.Context, job *river.Job[sweeper.DiscardBlobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("locator", job.Args.Locator))

	if job.Args.Locator == "" {
		return river.JobCancel(fmt.Errorf("discard job without locator")) //nolint: wrapcheck
	}

	if err := d.blobs.Delete(ctx, job.Args.Locator); err != nil {
		logger.Error(ctx, "error discarding blob", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not discard blob: %w", err)
	}

	logger.Info(ctx, "orphaned blob discarded")

	return nil
}

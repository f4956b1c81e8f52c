package sweeper

import (
	"context"
)

// Sweeper schedules the removal of blobs that no document references.
//
//go:generate mockgen -package mocksweeper -source=interface.go -destination=mock/mocksweeper.go *
type Sweeper interface {
	// Discard schedules the blob behind locator for deletion. Requests for
	// the same locator are collapsed into one job.
	Discard(ctx context.Context, locator string) error
}

package sweeper

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DiscardBlobKind is the river job kind of DiscardBlobArgs.
const DiscardBlobKind = "discard_blob"

// DiscardBlobArgs are the arguments of a job deleting an orphaned blob.
type DiscardBlobArgs struct {
	// Locator is the blob to delete. Jobs are unique per locator.
	Locator string `json:"locator" river:"unique"`

	maxAttempts int
	delay       time.Duration
}

func (args DiscardBlobArgs) Kind() string { return DiscardBlobKind }

// InsertOpts delays the job by the configured grace period so a blob is never
// removed while the request that wrote it is still being answered.
func (args DiscardBlobArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
	if args.delay > 0 {
		opts.ScheduledAt = time.Now().Add(args.delay)
	}

	return opts
}

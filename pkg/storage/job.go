package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only when the transaction commits, so a campaign marked as
// converting and its conversion job are written together.
//
//	_, err := tx.AddJob(ctx, campaign.ConvertTemplateArgs{...}, nil)
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted; false means a
	// unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

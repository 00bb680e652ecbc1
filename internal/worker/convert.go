package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaigner/internal/campaign"
	"campaigner/pkg/beefree"
	"campaigner/pkg/logger"
	"campaigner/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ConvertTemplateWorker turns imported HTML into an editor design and stores
// it on the campaign. When the vendor throttles us the job is snoozed for
// Backoff, for as long as the job is younger than MaxWait. Any other failure,
// or throttling past MaxWait, stores the fallback design so the campaign
// never stays in the converting state.
type ConvertTemplateWorker struct {
	river.WorkerDefaults[campaign.ConvertTemplateArgs]

	converter beefree.Client
	campaigns campaign.Manager
	backoff   time.Duration
	maxWait   time.Duration
}

// NewConvertTemplateWorker constructs a ConvertTemplateWorker.
func NewConvertTemplateWorker(converter beefree.Client,
	campaigns campaign.Manager,
	backoff, maxWait time.Duration) *ConvertTemplateWorker {
	return &ConvertTemplateWorker{
		converter: converter,
		campaigns: campaigns,
		backoff:   backoff,
		maxWait:   maxWait,
	}
}

func (w *ConvertTemplateWorker) Work(ctx context.Context, job *river.Job[campaign.ConvertTemplateArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("campaignID", job.Args.CampaignID))

	design, err := w.converter.ConvertHTML(ctx, job.Args.HTML)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) && time.Since(job.CreatedAt) < w.maxWait {
			logger.Info(ctx, "template conversion rate limited, snoozing", zap.Duration("backoff", w.backoff))

			return river.JobSnooze(w.backoff) //nolint: wrapcheck
		}

		logger.Warn(ctx, "template conversion failed, using fallback design", zap.Error(err))
		design = beefree.FallbackTemplate()
	}

	if err := w.campaigns.ApplyConvertedDesign(ctx, job.Args.UserID, job.Args.CampaignID, design); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			// campaign was deleted after the import was requested
			return river.JobCancel(err) //nolint: wrapcheck
		}
		if errors.Is(err, serrors.ErrConflict) {
			logger.Info(ctx, "design saved during conversion, dropping converted design")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error storing converted design", zap.Error(err))

		return fmt.Errorf("could not store converted design: %w", err)
	}

	logger.Info(ctx, "template converted successfully")

	return nil
}

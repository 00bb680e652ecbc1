// Package estimator serves outcome projections for a user's audience. It
// reads the audience and recent performance history for the caller, runs the
// pure estimate package over them and discards answers that a newer request
// from the same session has superseded.
package estimator

import (
	"context"
	"fmt"
	"time"

	"campaigner/internal/config"
	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
	"campaigner/pkg/logger"
	"campaigner/pkg/metrics"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxSessionLength bounds the client session identifier.
const MaxSessionLength = 128

// Options configure the estimator.
type Options struct {
	// ReadTimeout bounds both input reads together. Zero disables it.
	ReadTimeout time.Duration
	// GuardSize caps the sessions tracked for stale answers; the least
	// recently used one is forgotten first. Zero uses DefaultGuardSize.
	GuardSize int
	// GuardTTL forgets sessions idle for longer. Zero keeps them until evicted.
	GuardTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReadTimeout: cfg.Estimator.ReadTimeout,
		GuardSize:   cfg.Estimator.GuardSize,
		GuardTTL:    cfg.Estimator.GuardTTL,
	}
}

type estimator struct {
	options Options
	storage storage.Storage
	guard   *generationGuard

	requests metric.Int64Counter
}

// Estimate validates the segment, fetches the audience and the most recent
// history concurrently and projects the outcome. Reads that fail or find no
// audience yield serrors.ErrDataUnavailable; a request overtaken by a newer
// generation yields serrors.ErrConflict.
func (e *estimator) Estimate(ctx context.Context, userID domain.UserID, req Request) (estimate.Result, error) {
	ctx = logger.WithFields(ctx,
		zap.Stringer("audienceID", req.AudienceID),
		zap.String("segment", string(req.Segment)),
		zap.Uint64("generation", req.Generation))

	if len(req.Session) > MaxSessionLength {
		e.record(ctx, "invalid_session")

		return estimate.Result{}, serrors.With(serrors.ErrBadRequest, "session is too long")
	}

	if _, err := estimate.SegmentBoosts(req.Segment); err != nil {
		e.record(ctx, "invalid_segment")

		return estimate.Result{}, err
	}

	key := userID.String() + "/" + req.Session
	e.guard.observe(key, req.Generation)

	audience, records, err := e.inputs(ctx, userID, req.AudienceID)
	if err != nil {
		e.record(ctx, "unavailable")
		logger.Warn(ctx, "estimation inputs unavailable", zap.Error(err))

		return estimate.Result{}, serrors.Wrap(serrors.ErrDataUnavailable, err, "estimation inputs unavailable")
	}

	res, err := estimate.Estimate(estimate.Input{
		AudienceSize: audience.SubscriberCount,
		Records:      records,
		Subject:      req.Subject,
		Segment:      req.Segment,
	})
	if err != nil {
		return estimate.Result{}, fmt.Errorf("could not estimate: %w", err)
	}

	if e.guard.stale(key, req.Generation) {
		e.record(ctx, "stale")
		logger.Debug(ctx, "discarding superseded estimate")

		return estimate.Result{}, serrors.With(serrors.ErrConflict, "stale estimate")
	}

	e.record(ctx, "ok")

	return res, nil
}

func (e *estimator) inputs(ctx context.Context,
	userID domain.UserID,
	audienceID domain.AudienceID) (*domain.Audience, []domain.PerformanceRecord, error) {
	if e.options.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.ReadTimeout)
		defer cancel()
	}

	var (
		audience *domain.Audience
		records  []domain.PerformanceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := e.storage.AudienceByID(gctx, userID, audienceID)
		if err != nil {
			return fmt.Errorf("could not fetch audience: %w", err)
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "audience not found")
		}
		audience = a

		return nil
	})
	g.Go(func() error {
		r, err := e.storage.RecentPerformanceRecords(gctx, userID, estimate.MaxHistoricalRecords)
		if err != nil {
			return fmt.Errorf("could not fetch performance history: %w", err)
		}
		records = r

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err //nolint: wrapcheck
	}

	return audience, records, nil
}

func (e *estimator) record(ctx context.Context, outcome string) {
	e.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// New creates a new Estimator backed by the provided storage.
func New(storage storage.Storage, options Options) (Estimator, error) {
	requests, err := metrics.Meter().Int64Counter("campaigner.estimates",
		metric.WithDescription("Estimation requests by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create estimates counter: %w", err)
	}

	guard, err := newGenerationGuard(options.GuardSize, options.GuardTTL)
	if err != nil {
		return nil, err
	}

	return &estimator{
		options:  options,
		storage:  storage,
		guard:    guard,
		requests: requests,
	}, nil
}

package campaign

import (
	"context"
	"fmt"

	"campaigner/internal/estimator"
	"campaigner/pkg/domain"
	"campaigner/pkg/serrors"
)

// Predict projects the campaign against its audience and stores the result
// as a snapshot. The predicted revenue is the thirty-day figure. When the
// inputs cannot be read the error carries serrors.ErrDataUnavailable and
// nothing is stored.
func (m *manager) Predict(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID) (*domain.PredictionSnapshot, error) {
	c, err := m.Campaign(ctx, userID, ID)
	if err != nil {
		return nil, err
	}
	if c.AudienceID == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "campaign has no audience")
	}

	res, err := m.estimator.Estimate(ctx, userID, estimator.Request{
		AudienceID: *c.AudienceID,
		Subject:    c.Subject,
		Segment:    c.Segment,
	})
	if err != nil {
		return nil, fmt.Errorf("could not estimate campaign: %w", err)
	}

	snapshot, err := m.storage.StorePrediction(ctx, domain.PredictionSnapshot{
		UserID:           userID,
		CampaignID:       ID,
		PredictedRevenue: res.Projection.ThirtyDayRevenue,
		ConfidenceScore:  res.Projection.ConfidenceScore,
		Factors: domain.PredictionFactors{
			AudienceID:             *c.AudienceID,
			Subject:                c.Subject,
			Segment:                c.Segment,
			HistoricalCount:        res.HistoricalCount,
			SubjectBoost:           res.SubjectBoost,
			SegmentOpenBoost:       res.Boost.OpenRate,
			SegmentConversionBoost: res.Boost.ConversionRate,
			Projection:             res.Projection,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not store prediction: %w", err)
	}

	return snapshot, nil
}

// Predictions lists stored snapshots of a campaign, newest first.
func (m *manager) Predictions(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID) ([]domain.PredictionSnapshot, error) {
	if _, err := m.Campaign(ctx, userID, ID); err != nil {
		return nil, err
	}

	res, err := m.storage.CampaignPredictions(ctx, userID, ID, m.options.PredictionHistory)
	if err != nil {
		return nil, fmt.Errorf("could not list predictions: %w", err)
	}

	return res, nil
}

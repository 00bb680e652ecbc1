package storage

import (
	"context"

	"campaigner/pkg/domain"
)

// PredictionStorage stores prediction snapshots taken for campaigns.
type PredictionStorage interface {
	// StorePrediction inserts a snapshot and returns it with generated fields.
	StorePrediction(ctx context.Context, prediction domain.PredictionSnapshot) (*domain.PredictionSnapshot, error)
	// CampaignPredictions lists snapshots of a campaign, newest first. A zero
	// limit returns every snapshot.
	CampaignPredictions(ctx context.Context,
		userID domain.UserID,
		campaignID domain.CampaignID,
		limit uint) ([]domain.PredictionSnapshot, error)
}

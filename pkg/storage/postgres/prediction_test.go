package postgres_test

import (
	"context"
	"testing"

	"campaigner/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Predictions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	c := storeTestCampaign(t, pg, userID, "predicted")

	factors := domain.PredictionFactors{
		Segment:                domain.SegmentHighValue,
		Subject:                "Save 20% now!",
		HistoricalCount:        6,
		SubjectBoost:           1.2474,
		SegmentOpenBoost:       1.15,
		SegmentConversionBoost: 1.25,
		Projection: domain.Projection{
			AudienceSize:     600,
			ImmediateRevenue: 525,
			ThirtyDayRevenue: 708.75,
			Confidence:       domain.ConfidenceHigh,
			ConfidenceScore:  85,
		},
	}

	stored, err := pg.StorePrediction(ctx, domain.PredictionSnapshot{
		UserID:           userID,
		CampaignID:       c.ID,
		PredictedRevenue: 708.75,
		ConfidenceScore:  85,
		Factors:          factors,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.PredictionID{}, stored.ID)
	require.InDelta(t, 708.75, stored.PredictedRevenue, 1e-9)
	require.Equal(t, factors, stored.Factors)

	_, err = pg.StorePrediction(ctx, domain.PredictionSnapshot{
		UserID: userID, CampaignID: c.ID, PredictedRevenue: 75, ConfidenceScore: 45,
	})
	require.NoError(t, err)

	list, err := pg.CampaignPredictions(ctx, userID, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	latest, err := pg.CampaignPredictions(ctx, userID, c.ID, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)

	other, err := pg.CampaignPredictions(ctx, domain.UserID(uuid.New()), c.ID, 0)
	require.NoError(t, err)
	require.Empty(t, other)
}

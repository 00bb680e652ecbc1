package postgres_test

import (
	"context"
	"testing"
	"time"

	"campaigner/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_RecentPerformanceRecords_OrderAndLimit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	c := storeTestCampaign(t, pg, userID, "history")

	base := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	records := make([]domain.PerformanceRecord, 0, 12)
	for i := range 12 {
		records = append(records, domain.PerformanceRecord{
			UserID:     userID,
			CampaignID: c.ID,
			SentCount:  int64(100 + i),
			UpdatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	// same timestamp as the newest row; id breaks the tie
	records = append(records, domain.PerformanceRecord{
		UserID: userID, CampaignID: c.ID, SentCount: 999, UpdatedAt: base.Add(11 * time.Minute),
	})

	stored, err := pg.StorePerformanceRecords(ctx, records...)
	require.NoError(t, err)
	require.Len(t, stored, 13)

	recent, err := pg.RecentPerformanceRecords(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	require.EqualValues(t, 999, recent[0].SentCount)
	require.EqualValues(t, 111, recent[1].SentCount)
	require.EqualValues(t, 103, recent[9].SentCount)

	other, err := pg.RecentPerformanceRecords(ctx, domain.UserID(uuid.New()), 10)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestPgSQL_AnalyticsTotals(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	empty, err := pg.AnalyticsTotals(ctx, userID)
	require.NoError(t, err)
	require.Zero(t, empty.Records)
	require.Zero(t, empty.Revenue)

	c := storeTestCampaign(t, pg, userID, "totals")
	_, err = pg.StorePerformanceRecords(ctx,
		domain.PerformanceRecord{UserID: userID, CampaignID: c.ID, SentCount: 1000, DeliveredCount: 990,
			OpenedCount: 250, ClickedCount: 30, RevenueGenerated: 1234.56},
		domain.PerformanceRecord{UserID: userID, CampaignID: c.ID, SentCount: 500, DeliveredCount: 480,
			OpenedCount: 100, ClickedCount: 10, BouncedCount: 20, UnsubscribedCount: 2, RevenueGenerated: 65.44},
	)
	require.NoError(t, err)

	totals, err := pg.AnalyticsTotals(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 2, totals.Records)
	require.EqualValues(t, 1500, totals.Sent)
	require.EqualValues(t, 1470, totals.Delivered)
	require.EqualValues(t, 350, totals.Opened)
	require.EqualValues(t, 40, totals.Clicked)
	require.EqualValues(t, 20, totals.Bounced)
	require.EqualValues(t, 2, totals.Unsubscribed)
	require.InDelta(t, 1300.0, totals.Revenue, 1e-9)
}

func TestPgSQL_CampaignPerformances(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	c := storeTestCampaign(t, pg, userID, "joined")

	_, err := pg.StorePerformanceRecords(ctx, domain.PerformanceRecord{
		UserID: userID, CampaignID: c.ID, SentCount: 42, RevenueGenerated: 10.5,
	})
	require.NoError(t, err)

	rows, err := pg.CampaignPerformances(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "joined", rows[0].Name)
	require.Equal(t, "joined subject", rows[0].Subject)
	require.Equal(t, c.ID, rows[0].Campaign)
	require.Equal(t, domain.CampaignStatusDraft, rows[0].Status)
	require.EqualValues(t, 42, rows[0].Record.SentCount)
	require.InDelta(t, 10.5, rows[0].Record.RevenueGenerated, 1e-9)
	require.True(t, rows[0].SentAt.IsZero())
}

func TestPgSQL_LatestCampaignPerformances(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	first := storeTestCampaign(t, pg, userID, "first")
	second := storeTestCampaign(t, pg, userID, "second")
	unrequested := storeTestCampaign(t, pg, userID, "unrequested")
	foreign := storeTestCampaign(t, pg, domain.UserID(uuid.New()), "foreign")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := pg.StorePerformanceRecords(ctx,
		domain.PerformanceRecord{UserID: userID, CampaignID: first.ID, SentCount: 1, UpdatedAt: base},
		domain.PerformanceRecord{UserID: userID, CampaignID: first.ID, SentCount: 2, UpdatedAt: base.Add(time.Hour)},
		domain.PerformanceRecord{UserID: userID, CampaignID: second.ID, SentCount: 3, UpdatedAt: base},
		domain.PerformanceRecord{UserID: userID, CampaignID: unrequested.ID, SentCount: 4, UpdatedAt: base},
		domain.PerformanceRecord{UserID: foreign.UserID, CampaignID: foreign.ID, SentCount: 5, UpdatedAt: base},
	)
	require.NoError(t, err)

	rows, err := pg.LatestCampaignPerformances(ctx, userID, []domain.CampaignID{first.ID, second.ID, foreign.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byCampaign := map[domain.CampaignID]int64{}
	for _, r := range rows {
		byCampaign[r.Campaign] = r.Record.SentCount
	}
	require.Equal(t, map[domain.CampaignID]int64{first.ID: 2, second.ID: 3}, byCampaign)

	rows, err = pg.LatestCampaignPerformances(ctx, userID, nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}

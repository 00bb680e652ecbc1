package storage

import (
	"context"
	"time"

	"campaigner/pkg/domain"
)

// AnalyticsTotals sums every performance record of a user.
type AnalyticsTotals struct {
	Records      int64
	Sent         int64
	Delivered    int64
	Opened       int64
	Clicked      int64
	Bounced      int64
	Unsubscribed int64
	Revenue      float64
}

// CampaignPerformance is a performance record joined with its campaign.
type CampaignPerformance struct {
	Record   domain.PerformanceRecord
	Name     string
	Subject  string
	Status   domain.CampaignStatus
	SentAt   time.Time
	Campaign domain.CampaignID
}

// AnalyticsStorage stores campaign performance counters.
type AnalyticsStorage interface {
	// StorePerformanceRecords inserts records and returns them with generated fields.
	StorePerformanceRecords(ctx context.Context,
		records ...domain.PerformanceRecord) ([]domain.PerformanceRecord, error)
	// RecentPerformanceRecords returns at most limit records of a user ordered
	// by updated_at DESC, id DESC.
	RecentPerformanceRecords(ctx context.Context,
		userID domain.UserID,
		limit uint) ([]domain.PerformanceRecord, error)
	// AnalyticsTotals sums all records of a user.
	AnalyticsTotals(ctx context.Context, userID domain.UserID) (AnalyticsTotals, error)
	// CampaignPerformances returns the most recent records joined with their
	// campaign. A zero limit returns every record.
	CampaignPerformances(ctx context.Context,
		userID domain.UserID,
		limit uint) ([]CampaignPerformance, error)
	// LatestCampaignPerformances returns the most recent record of each of
	// campaignIDs that has one. Campaigns of other users are skipped.
	LatestCampaignPerformances(ctx context.Context,
		userID domain.UserID,
		campaignIDs []domain.CampaignID) ([]CampaignPerformance, error)
}

package domain

import "time"

// PerformanceRecord holds the delivery counters of one sent campaign.
// Revenue is in the account currency.
type PerformanceRecord struct {
	ID         int64      `json:"id"`
	UserID     UserID     `json:"userId"`
	CampaignID CampaignID `json:"campaignId"`

	SentCount         int64   `json:"sentCount"`
	DeliveredCount    int64   `json:"deliveredCount"`
	OpenedCount       int64   `json:"openedCount"`
	ClickedCount      int64   `json:"clickedCount"`
	BouncedCount      int64   `json:"bouncedCount"`
	UnsubscribedCount int64   `json:"unsubscribedCount"`
	RevenueGenerated  float64 `json:"revenueGenerated"`

	UpdatedAt time.Time `json:"updatedAt"`
}

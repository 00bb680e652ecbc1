package reporting

import (
	"context"

	"campaigner/pkg/demo"
	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

// CampaignSummary is a campaign with its latest delivery figures.
type CampaignSummary struct {
	ID        domain.CampaignID     `json:"id"`
	Name      string                `json:"name"`
	Subject   string                `json:"subject"`
	Status    domain.CampaignStatus `json:"status"`
	Sent      int64                 `json:"sent"`
	Opened    int64                 `json:"opened"`
	Clicked   int64                 `json:"clicked"`
	Revenue   float64               `json:"revenue"`
	OpenRate  float64               `json:"openRate"`
	ClickRate float64               `json:"clickRate"`
}

// Dashboard is the account overview. Demo is set when the figures are
// sample data because the account has none of its own.
type Dashboard struct {
	Demo             bool              `json:"demo"`
	TotalCampaigns   int64             `json:"totalCampaigns"`
	ActiveCampaigns  int64             `json:"activeCampaigns"`
	TotalAudiences   int64             `json:"totalAudiences"`
	TotalSubscribers int64             `json:"totalSubscribers"`
	TotalRevenue     float64           `json:"totalRevenue"`
	AvgOpenRate      float64           `json:"avgOpenRate"`
	AvgClickRate     float64           `json:"avgClickRate"`
	RecentCampaigns  []CampaignSummary `json:"recentCampaigns"`
}

// Overview aggregates every performance record of an account.
type Overview struct {
	Records         int64             `json:"records"`
	Sent            int64             `json:"sent"`
	Delivered       int64             `json:"delivered"`
	Opened          int64             `json:"opened"`
	Clicked         int64             `json:"clicked"`
	Bounced         int64             `json:"bounced"`
	Unsubscribed    int64             `json:"unsubscribed"`
	Revenue         float64           `json:"revenue"`
	DeliveryRate    float64           `json:"deliveryRate"`
	OpenRate        float64           `json:"openRate"`
	ClickRate       float64           `json:"clickRate"`
	BounceRate      float64           `json:"bounceRate"`
	UnsubscribeRate float64           `json:"unsubscribeRate"`
	Campaigns       []CampaignSummary `json:"campaigns"`
}

//go:generate mockgen -package mockreporting -source=interface.go -destination=mock/mockreporting.go *
type Reporter interface {
	Dashboard(ctx context.Context, userID domain.UserID) (Dashboard, error)
	Overview(ctx context.Context, userID domain.UserID) (Overview, error)
	// Insight compares the latest performance record with industry averages.
	// The boolean is false when there is nothing worth reporting.
	Insight(ctx context.Context, userID domain.UserID) (estimate.Insight, bool, error)
	// Recommendations returns demo cross-sell suggestions, stable per user and product.
	Recommendations(userID domain.UserID, productID string) []demo.Recommendation
}

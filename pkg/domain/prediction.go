package domain

import (
	"time"

	"github.com/google/uuid"
)

// PredictionID uniquely identifies a stored prediction snapshot.
type PredictionID uuid.UUID

// PredictionFactors records what a snapshot was computed from, so a stored
// number can be explained later.
type PredictionFactors struct {
	AudienceID             AudienceID `json:"audienceId"`
	Subject                string     `json:"subject"`
	Segment                Segment    `json:"segment"`
	HistoricalCount        int        `json:"historicalCount"`
	SubjectBoost           float64    `json:"subjectBoost"`
	SegmentOpenBoost       float64    `json:"segmentOpenBoost"`
	SegmentConversionBoost float64    `json:"segmentConversionBoost"`
	Projection             Projection `json:"projection"`
}

// PredictionSnapshot is a projection persisted against a campaign.
type PredictionSnapshot struct {
	ID         PredictionID `json:"id"`
	UserID     UserID       `json:"userId"`
	CampaignID CampaignID   `json:"campaignId"`

	PredictedRevenue float64           `json:"predictedRevenue"`
	ConfidenceScore  int               `json:"confidenceScore"`
	Factors          PredictionFactors `json:"factors"`

	CreatedAt time.Time `json:"createdAt"`
}

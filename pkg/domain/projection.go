package domain

// Segment is the targeting tag of a campaign. It selects the boost factors
// applied to the base open and conversion rates.
type Segment string

const (
	SegmentGeneral        Segment = "general"
	SegmentHighValue      Segment = "high-value"
	SegmentNewSubscribers Segment = "new-subscribers"
	SegmentReEngagement   Segment = "re-engagement"
)

// Confidence is the discrete label attached to a projection.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Projection is the estimated outcome of sending a campaign to an audience.
// Rates are percentages.
type Projection struct {
	AudienceSize int `json:"audienceSize"`

	EstimatedOpenRate       float64 `json:"estimatedOpenRate"`
	EstimatedClickRate      float64 `json:"estimatedClickRate"`
	EstimatedConversionRate float64 `json:"estimatedConversionRate"`

	EstimatedOpens       int64 `json:"estimatedOpens"`
	EstimatedClicks      int64 `json:"estimatedClicks"`
	EstimatedConversions int64 `json:"estimatedConversions"`

	ImmediateRevenue float64 `json:"immediateRevenue"`
	ThirtyDayRevenue float64 `json:"thirtyDayRevenue"`

	Confidence      Confidence `json:"confidence"`
	ConfidenceScore int        `json:"confidenceScore"`
}

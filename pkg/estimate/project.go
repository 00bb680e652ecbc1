package estimate

import "campaigner/pkg/domain"

// Project computes the outcome of sending to audienceSize recipients. Boosts
// multiply the base open and conversion rates before capping; clicks always
// use the unboosted click rate. Confidence fields are left for the caller.
func Project(audienceSize int, base Rates, segment SegmentBoost, subjectBoost float64) domain.Projection {
	size := float64(max(audienceSize, 0))

	openRate := clamp(base.OpenRate*segment.OpenRate*subjectBoost, OpenRateCap)
	clickRate := clamp(base.ClickRate, 100)
	conversionRate := clamp(base.ConversionRate*segment.ConversionRate, ConversionRateCap)

	opens := roundHalfUp(size * openRate / 100)
	clicks := roundHalfUp(size * clickRate / 100)
	conversions := roundHalfUp(float64(clicks) * conversionRate / 100)
	immediate := float64(conversions) * AvgOrderValue

	return domain.Projection{
		AudienceSize:            int(size),
		EstimatedOpenRate:       openRate,
		EstimatedClickRate:      clickRate,
		EstimatedConversionRate: conversionRate,
		EstimatedOpens:          opens,
		EstimatedClicks:         clicks,
		EstimatedConversions:    conversions,
		ImmediateRevenue:        immediate,
		ThirtyDayRevenue:        immediate * ThirtyDayMultiplier,
	}
}

func clamp(v, upper float64) float64 {
	if v <= 0 || v != v {
		return 0
	}

	return min(v, upper)
}

package estimate

import "campaigner/pkg/domain"

// Insight highlights how the latest campaign beat the industry averages.
type Insight struct {
	Metric      string `json:"metric"`
	Improvement int64  `json:"improvement"`
}

const (
	InsightMetricOpenRate   = "open rate"
	InsightMetricClickRate  = "click rate"
	InsightMetricEngagement = "engagement"
)

// PerformanceInsight compares one campaign's open and click rates with
// DefaultOpenRate and DefaultClickRate. It reports the stronger relative
// improvement when it exceeds 10%, falls back to a generic engagement note
// above 5% open-rate improvement, and reports nothing otherwise.
func PerformanceInsight(latest domain.PerformanceRecord) (Insight, bool) {
	if latest.SentCount <= 0 {
		return Insight{}, false
	}
	sent := float64(latest.SentCount)

	openRate := 100 * float64(max(latest.OpenedCount, 0)) / sent
	clickRate := 100 * float64(max(latest.ClickedCount, 0)) / sent

	openGain := (openRate - DefaultOpenRate) / DefaultOpenRate * 100
	clickGain := (clickRate - DefaultClickRate) / DefaultClickRate * 100

	switch {
	case openGain > clickGain && openGain > 10:
		return Insight{Metric: InsightMetricOpenRate, Improvement: roundHalfUp(openGain)}, true
	case clickGain > 10:
		return Insight{Metric: InsightMetricClickRate, Improvement: roundHalfUp(clickGain)}, true
	case openGain > 5:
		return Insight{Metric: InsightMetricEngagement, Improvement: roundHalfUp(openGain)}, true
	default:
		return Insight{}, false
	}
}

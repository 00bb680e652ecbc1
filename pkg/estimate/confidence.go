package estimate

import "campaigner/pkg/domain"

const (
	smallAudience      = 100
	smallAudienceScore = 55
)

// Classify maps the amount of history and the audience size to a confidence
// label and a 0-100 score. Rules are checked top to bottom:
//
//	records >= 5 and audience >= 500  high   85
//	records >= 2 and audience >= 100  medium 70
//	records >  0                      low    50
//	no records                        low    45
//
// Audiences under 100 are always low, with the score capped at 55.
func Classify(recordCount, audienceSize int) (domain.Confidence, int) {
	var (
		confidence domain.Confidence
		score      int
	)
	switch {
	case recordCount >= 5 && audienceSize >= 500:
		confidence, score = domain.ConfidenceHigh, 85
	case recordCount >= 2 && audienceSize >= 100:
		confidence, score = domain.ConfidenceMedium, 70
	case recordCount > 0:
		confidence, score = domain.ConfidenceLow, 50
	default:
		confidence, score = domain.ConfidenceLow, 45
	}

	if audienceSize < smallAudience {
		confidence = domain.ConfidenceLow
		score = min(score, smallAudienceScore)
	}

	return confidence, score
}

package estimate

import (
	"campaigner/pkg/domain"
	"campaigner/pkg/serrors"
)

// SegmentBoost holds the multipliers a segment applies to the base open and
// conversion rates. Click rate is never boosted.
type SegmentBoost struct {
	OpenRate       float64 `json:"openRate"`
	ConversionRate float64 `json:"conversionRate"`
}

var segmentBoosts = map[domain.Segment]SegmentBoost{ //nolint: gochecknoglobals
	domain.SegmentHighValue:      {OpenRate: 1.15, ConversionRate: 1.25},
	domain.SegmentNewSubscribers: {OpenRate: 1.30, ConversionRate: 1.10},
	domain.SegmentReEngagement:   {OpenRate: 0.85, ConversionRate: 0.90},
	domain.SegmentGeneral:        {OpenRate: 1.00, ConversionRate: 1.00},
}

// Segments lists the known segment tags.
func Segments() []domain.Segment {
	return []domain.Segment{
		domain.SegmentGeneral,
		domain.SegmentHighValue,
		domain.SegmentNewSubscribers,
		domain.SegmentReEngagement,
	}
}

// SegmentBoosts looks up the boost factors of segment. An empty segment means
// none was chosen and resolves to general; any other unknown tag fails with
// serrors.ErrInvalidSegmentTag.
func SegmentBoosts(segment domain.Segment) (SegmentBoost, error) {
	if segment == "" {
		segment = domain.SegmentGeneral
	}
	b, ok := segmentBoosts[segment]
	if !ok {
		return SegmentBoost{}, serrors.With(serrors.ErrInvalidSegmentTag, "unknown segment %q", string(segment))
	}

	return b, nil
}

package estimate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

var approx = cmpopts.EquateApprox(0, 1e-6) //nolint: gochecknoglobals

func TestEstimate_NoHistory(t *testing.T) {
	res, err := estimate.Estimate(estimate.Input{AudienceSize: 1000})
	require.NoError(t, err)

	want := domain.Projection{
		AudienceSize:            1000,
		EstimatedOpenRate:       22,
		EstimatedClickRate:      2.8,
		EstimatedConversionRate: 3.5,
		EstimatedOpens:          220,
		EstimatedClicks:         28,
		EstimatedConversions:    1,
		ImmediateRevenue:        75,
		ThirtyDayRevenue:        101.25,
		Confidence:              domain.ConfidenceLow,
		ConfidenceScore:         45,
	}
	if diff := cmp.Diff(want, res.Projection, approx); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, res.HistoricalCount)
	require.InDelta(t, 1.0, res.SubjectBoost, 1e-12)
}

func TestEstimate_HighValueWithHistory(t *testing.T) {
	records := make([]domain.PerformanceRecord, 6)
	records[0] = domain.PerformanceRecord{SentCount: 10000, OpenedCount: 2200, ClickedCount: 280, RevenueGenerated: 7000}

	res, err := estimate.Estimate(estimate.Input{
		AudienceSize: 600,
		Records:      records,
		Subject:      "Save 20% now!",
		Segment:      domain.SegmentHighValue,
	})
	require.NoError(t, err)

	subject := 1.10 * 1.05 * 1.08
	openRate := 22 * 1.15 * subject
	conversionRate := 100 * (7000.0 / 75) / 280 * 1.25

	want := domain.Projection{
		AudienceSize:            600,
		EstimatedOpenRate:       openRate,
		EstimatedClickRate:      2.8,
		EstimatedConversionRate: conversionRate,
		EstimatedOpens:          189,
		EstimatedClicks:         17,
		EstimatedConversions:    7,
		ImmediateRevenue:        525,
		ThirtyDayRevenue:        708.75,
		Confidence:              domain.ConfidenceHigh,
		ConfidenceScore:         85,
	}
	if diff := cmp.Diff(want, res.Projection, approx); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
	require.InDelta(t, 31.56, res.Projection.EstimatedOpenRate, 0.01)
	require.InDelta(t, 41.67, res.Projection.EstimatedConversionRate, 0.01)
	require.Equal(t, 6, res.HistoricalCount)
}

func TestEstimate_UnknownSegment(t *testing.T) {
	_, err := estimate.Estimate(estimate.Input{AudienceSize: 1000, Segment: "vip"})
	require.Error(t, err)
}

func TestEstimate_SmallAudience(t *testing.T) {
	records := make([]domain.PerformanceRecord, 8)
	for i := range records {
		records[i] = domain.PerformanceRecord{SentCount: 100, OpenedCount: 30, ClickedCount: 5, RevenueGenerated: 150}
	}

	res, err := estimate.Estimate(estimate.Input{AudienceSize: 50, Records: records})
	require.NoError(t, err)
	require.Equal(t, domain.ConfidenceLow, res.Projection.Confidence)
	require.LessOrEqual(t, res.Projection.ConfidenceScore, 55)
}

func TestEstimate_UsesAtMostTenRecords(t *testing.T) {
	records := make([]domain.PerformanceRecord, 0, 12)
	for range 10 {
		records = append(records, domain.PerformanceRecord{SentCount: 100, OpenedCount: 20, ClickedCount: 2})
	}
	// older rows with very different numbers must not be considered
	records = append(records,
		domain.PerformanceRecord{SentCount: 100, OpenedCount: 100, ClickedCount: 100},
		domain.PerformanceRecord{SentCount: 100, OpenedCount: 100, ClickedCount: 100},
	)

	res, err := estimate.Estimate(estimate.Input{AudienceSize: 1000, Records: records})
	require.NoError(t, err)
	require.Equal(t, 10, res.HistoricalCount)
	require.InDelta(t, 20.0, res.Base.OpenRate, 1e-9)
	require.InDelta(t, 2.0, res.Base.ClickRate, 1e-9)
}

func TestProject_Bounds(t *testing.T) {
	subjects := []string{"", "Hi!", "Save 20% now!", "Get $10 off everything in store this weekend only?"}
	bases := []estimate.Rates{
		estimate.DefaultRates(),
		{OpenRate: 60, ClickRate: 15, ConversionRate: 90},
		{OpenRate: 100, ClickRate: 100, ConversionRate: 400},
		{OpenRate: 0, ClickRate: 0, ConversionRate: 0},
	}

	for _, size := range []int{0, 1, 99, 1000, 123457} {
		for _, base := range bases {
			for _, segment := range estimate.Segments() {
				boost, err := estimate.SegmentBoosts(segment)
				require.NoError(t, err)
				for _, subject := range subjects {
					p := estimate.Project(size, base, boost, estimate.SubjectBoost(subject))
					require.LessOrEqual(t, p.EstimatedOpenRate, estimate.OpenRateCap)
					require.LessOrEqual(t, p.EstimatedConversionRate, estimate.ConversionRateCap)
					require.LessOrEqual(t, p.EstimatedOpens, int64(size))
					require.LessOrEqual(t, p.EstimatedClicks, int64(size))
					require.LessOrEqual(t, p.EstimatedConversions, p.EstimatedClicks)
					require.GreaterOrEqual(t, p.ImmediateRevenue, 0.0)
				}
			}
		}
	}
}

func TestProject_ClicksIgnoreBoosts(t *testing.T) {
	base := estimate.DefaultRates()
	plain := estimate.Project(1000, base, estimate.SegmentBoost{OpenRate: 1, ConversionRate: 1}, 1)
	boosted := estimate.Project(1000, base, estimate.SegmentBoost{OpenRate: 1.3, ConversionRate: 1.1}, 1.2474)

	require.Equal(t, plain.EstimatedClicks, boosted.EstimatedClicks)
	require.InDelta(t, plain.EstimatedClickRate, boosted.EstimatedClickRate, 1e-12)
	require.Greater(t, boosted.EstimatedOpens, plain.EstimatedOpens)
}

func TestProject_NegativeInputsClamp(t *testing.T) {
	p := estimate.Project(-10, estimate.Rates{OpenRate: -5, ClickRate: -1, ConversionRate: -3},
		estimate.SegmentBoost{OpenRate: 1, ConversionRate: 1}, 1)

	require.Equal(t, domain.Projection{}, p)
}

func TestProject_Idempotent(t *testing.T) {
	base := estimate.Rates{OpenRate: 27.3, ClickRate: 3.1, ConversionRate: 12.5}
	boost := estimate.SegmentBoost{OpenRate: 1.3, ConversionRate: 1.1}

	first := estimate.Project(4321, base, boost, 1.155)
	for range 5 {
		if diff := cmp.Diff(first, estimate.Project(4321, base, boost, 1.155)); diff != "" {
			t.Fatalf("projection changed between calls (-first +again):\n%s", diff)
		}
	}
}

func TestProject_RoundsHalfUp(t *testing.T) {
	// 50 * 3% = 1.5 clicks
	p := estimate.Project(50, estimate.Rates{OpenRate: 1, ClickRate: 3, ConversionRate: 50},
		estimate.SegmentBoost{OpenRate: 1, ConversionRate: 1}, 1)

	require.EqualValues(t, 2, p.EstimatedClicks)
	require.EqualValues(t, 1, p.EstimatedOpens) // 0.5
	require.EqualValues(t, 1, p.EstimatedConversions)
}

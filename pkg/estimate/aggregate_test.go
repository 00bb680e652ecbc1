package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

func TestAggregate(t *testing.T) {
	cases := []struct {
		name    string
		records []domain.PerformanceRecord
		want    estimate.Rates
	}{
		{
			name: "no records uses defaults",
			want: estimate.Rates{OpenRate: 22, ClickRate: 2.8, ConversionRate: 3.5},
		},
		{
			name:    "zero sent volume uses defaults",
			records: []domain.PerformanceRecord{{OpenedCount: 10, ClickedCount: 3}},
			want:    estimate.Rates{OpenRate: 22, ClickRate: 2.8, ConversionRate: 3.5},
		},
		{
			name: "sums across records",
			records: []domain.PerformanceRecord{
				{SentCount: 1000, OpenedCount: 300, ClickedCount: 40, RevenueGenerated: 1500},
				{SentCount: 1000, OpenedCount: 100, ClickedCount: 20, RevenueGenerated: 750},
			},
			// 2250 revenue = 30 orders over 60 clicks
			want: estimate.Rates{OpenRate: 20, ClickRate: 3, ConversionRate: 50},
		},
		{
			name:    "no clicks keeps default conversion",
			records: []domain.PerformanceRecord{{SentCount: 200, OpenedCount: 50}},
			want:    estimate.Rates{OpenRate: 25, ClickRate: 0, ConversionRate: 3.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := estimate.Aggregate(tc.records)
			require.InDelta(t, tc.want.OpenRate, got.OpenRate, 1e-9)
			require.InDelta(t, tc.want.ClickRate, got.ClickRate, 1e-9)
			require.InDelta(t, tc.want.ConversionRate, got.ConversionRate, 1e-9)
		})
	}
}

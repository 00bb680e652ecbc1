package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

func TestPerformanceInsight(t *testing.T) {
	cases := []struct {
		name   string
		record domain.PerformanceRecord
		want   estimate.Insight
		ok     bool
	}{
		{
			name:   "open rate wins",
			record: domain.PerformanceRecord{SentCount: 1000, OpenedCount: 330, ClickedCount: 28},
			want:   estimate.Insight{Metric: estimate.InsightMetricOpenRate, Improvement: 50},
			ok:     true,
		},
		{
			name:   "click rate wins",
			record: domain.PerformanceRecord{SentCount: 1000, OpenedCount: 220, ClickedCount: 42},
			want:   estimate.Insight{Metric: estimate.InsightMetricClickRate, Improvement: 50},
			ok:     true,
		},
		{
			name:   "small open gain is engagement",
			record: domain.PerformanceRecord{SentCount: 1000, OpenedCount: 235, ClickedCount: 28},
			want:   estimate.Insight{Metric: estimate.InsightMetricEngagement, Improvement: 7},
			ok:     true,
		},
		{
			name:   "average performance",
			record: domain.PerformanceRecord{SentCount: 1000, OpenedCount: 220, ClickedCount: 28},
		},
		{
			name:   "nothing sent",
			record: domain.PerformanceRecord{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := estimate.PerformanceInsight(tc.record)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

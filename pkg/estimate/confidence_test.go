package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		records, audience int
		label             domain.Confidence
		score             int
	}{
		{records: 5, audience: 500, label: domain.ConfidenceHigh, score: 85},
		{records: 10, audience: 10000, label: domain.ConfidenceHigh, score: 85},
		{records: 4, audience: 500, label: domain.ConfidenceMedium, score: 70},
		{records: 5, audience: 499, label: domain.ConfidenceMedium, score: 70},
		{records: 2, audience: 100, label: domain.ConfidenceMedium, score: 70},
		{records: 1, audience: 5000, label: domain.ConfidenceLow, score: 50},
		{records: 0, audience: 5000, label: domain.ConfidenceLow, score: 45},
		{records: 10, audience: 99, label: domain.ConfidenceLow, score: 50},
		{records: 0, audience: 0, label: domain.ConfidenceLow, score: 45},
	}

	for _, tc := range cases {
		label, score := estimate.Classify(tc.records, tc.audience)
		require.Equal(t, tc.label, label, "records=%d audience=%d", tc.records, tc.audience)
		require.Equal(t, tc.score, score, "records=%d audience=%d", tc.records, tc.audience)
	}
}

func TestClassify_SmallAudienceNeverAbove55(t *testing.T) {
	for records := 0; records <= 10; records++ {
		for audience := 0; audience < 100; audience += 7 {
			label, score := estimate.Classify(records, audience)
			require.Equal(t, domain.ConfidenceLow, label)
			require.LessOrEqual(t, score, 55)
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	sizes := []int{0, 50, 99, 100, 250, 499, 500, 1000, 100000}
	for records := 0; records <= 10; records++ {
		for i := 1; i < len(sizes); i++ {
			_, lo := estimate.Classify(records, sizes[i-1])
			_, hi := estimate.Classify(records, sizes[i])
			require.GreaterOrEqual(t, hi, lo, "audience %d -> %d with %d records", sizes[i-1], sizes[i], records)
		}
	}
	for _, size := range sizes {
		for records := 1; records <= 10; records++ {
			_, lo := estimate.Classify(records-1, size)
			_, hi := estimate.Classify(records, size)
			require.GreaterOrEqual(t, hi, lo, "records %d -> %d with audience %d", records-1, records, size)
		}
	}
}

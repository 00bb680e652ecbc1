package estimate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"campaigner/pkg/estimate"
)

func TestSubjectBoost(t *testing.T) {
	long := strings.Repeat("a", 51)

	cases := []struct {
		name    string
		subject string
		want    float64
	}{
		{name: "absent", subject: "", want: 1},
		{name: "short", subject: "Weekly news", want: 1.10},
		{name: "exactly fifty", subject: strings.Repeat("b", 50), want: 1.10},
		{name: "too long", subject: long, want: 1},
		{name: "long with question", subject: long + "?", want: 1.05},
		{name: "short with exclamation", subject: "Hello!", want: 1.10 * 1.05},
		{name: "percentage", subject: "Save 20% today", want: 1.10 * 1.08},
		{name: "dollar amount", subject: "Get $5 off", want: 1.10 * 1.08},
		{name: "dollar without digits", subject: "Big $ savings", want: 1.10},
		{name: "percent without digits", subject: "100 percent %", want: 1.10},
		{name: "all rules", subject: "Save 20% now!", want: 1.10 * 1.05 * 1.08},
		{name: "multibyte counted as characters", subject: strings.Repeat("é", 50), want: 1.10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, estimate.SubjectBoost(tc.subject), 1e-12)
		})
	}
}

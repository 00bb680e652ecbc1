package estimate

import "campaigner/pkg/domain"

// Rates are average performance percentages.
type Rates struct {
	OpenRate       float64 `json:"openRate"`
	ClickRate      float64 `json:"clickRate"`
	ConversionRate float64 `json:"conversionRate"`
}

// DefaultRates are the industry-average placeholders used without history.
func DefaultRates() Rates {
	return Rates{
		OpenRate:       DefaultOpenRate,
		ClickRate:      DefaultClickRate,
		ConversionRate: DefaultConversionRate,
	}
}

// Aggregate reduces performance records to average rates. Open and click
// rates are relative to sent volume; the conversion rate is implied from
// revenue at AvgOrderValue per order, relative to clicks. Missing volume falls
// back to DefaultRates field by field.
func Aggregate(records []domain.PerformanceRecord) Rates {
	var sent, opened, clicked int64
	var revenue float64
	for _, r := range records {
		sent += max(r.SentCount, 0)
		opened += max(r.OpenedCount, 0)
		clicked += max(r.ClickedCount, 0)
		revenue += max(r.RevenueGenerated, 0)
	}

	rates := DefaultRates()
	if sent == 0 {
		return rates
	}

	rates.OpenRate = 100 * float64(opened) / float64(sent)
	rates.ClickRate = 100 * float64(clicked) / float64(sent)
	if clicked > 0 {
		rates.ConversionRate = 100 * (revenue / AvgOrderValue) / float64(clicked)
	}

	return rates
}

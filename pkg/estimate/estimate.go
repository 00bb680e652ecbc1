// Package estimate turns an audience size, a sample of past campaign
// performance and optional campaign metadata into projected opens, clicks,
// conversions and revenue.
//
// Every function here is pure: no I/O, no clock, no randomness. Callers fetch
// inputs themselves and pass the user's data in explicitly.
package estimate

import (
	"math"

	"campaigner/pkg/domain"
)

const (
	// DefaultOpenRate is used when there is no sent volume to learn from.
	DefaultOpenRate = 22.0
	// DefaultClickRate is used when there is no sent volume to learn from.
	DefaultClickRate = 2.8
	// DefaultConversionRate is used when there are no clicks to learn from.
	DefaultConversionRate = 3.5
	// AvgOrderValue converts revenue into an implied order count and back.
	AvgOrderValue = 75.0
	// OpenRateCap bounds the boosted open rate.
	OpenRateCap = 45.0
	// ConversionRateCap bounds the boosted conversion rate.
	ConversionRateCap = 100.0
	// ThirtyDayMultiplier extends immediate revenue with long-tail attribution.
	ThirtyDayMultiplier = 1.35
	// MaxHistoricalRecords is the size of the history sample considered.
	MaxHistoricalRecords = 10
)

// Input is everything needed for one estimate. Records are expected most
// recent first; only the first MaxHistoricalRecords are used.
type Input struct {
	AudienceSize int
	Records      []domain.PerformanceRecord
	Subject      string
	Segment      domain.Segment
}

// Result is a projection together with the intermediate values it was built
// from.
type Result struct {
	Projection      domain.Projection
	Base            Rates
	Boost           SegmentBoost
	SubjectBoost    float64
	HistoricalCount int
}

// Estimate runs the aggregator, classifier, boost lookups and projector in
// order. The only possible error is an unknown segment tag.
func Estimate(in Input) (Result, error) {
	boost, err := SegmentBoosts(in.Segment)
	if err != nil {
		return Result{}, err
	}

	records := in.Records
	if len(records) > MaxHistoricalRecords {
		records = records[:MaxHistoricalRecords]
	}

	base := Aggregate(records)
	subject := SubjectBoost(in.Subject)
	confidence, score := Classify(len(records), in.AudienceSize)

	p := Project(in.AudienceSize, base, boost, subject)
	p.Confidence = confidence
	p.ConfidenceScore = score

	return Result{
		Projection:      p,
		Base:            base,
		Boost:           boost,
		SubjectBoost:    subject,
		HistoricalCount: len(records),
	}, nil
}

// roundHalfUp rounds non-negative x to the nearest integer, halves going up.
// Non-positive input yields 0.
func roundHalfUp(x float64) int64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}

	return int64(math.Floor(x + 0.5))
}

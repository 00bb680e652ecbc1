// Package demo produces clearly labelled sample data for accounts that have
// none of their own. Output is pseudo-random but fully determined by the
// seed, and nothing here is ever used as input to an estimate.
package demo

import (
	"cmp"
	"hash/fnv"
	"math/rand/v2"
	"slices"
)

// Label marks names, tags and criteria of generated rows.
const Label = "demo"

// Product is an entry of the demo catalogue.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Products is the demo catalogue recommendations are drawn from.
var Products = []Product{ //nolint: gochecknoglobals
	{ID: "PROD-101", Name: "Wireless Headphones", Category: "Electronics"},
	{ID: "PROD-202", Name: "Smartphone Case", Category: "Accessories"},
	{ID: "PROD-303", Name: "Portable Charger", Category: "Electronics"},
	{ID: "PROD-404", Name: "Bluetooth Speaker", Category: "Electronics"},
	{ID: "PROD-505", Name: "Screen Protector", Category: "Accessories"},
	{ID: "PROD-606", Name: "USB-C Cable", Category: "Accessories"},
	{ID: "PROD-707", Name: "Phone Stand", Category: "Accessories"},
}

// DefaultProduct is used when no product is asked for.
const DefaultProduct = "PROD-101"

// Recommendation is a cross-sell suggestion in market-basket terms.
type Recommendation struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Confidence  float64 `json:"confidence"`
	Support     float64 `json:"support"`
	Lift        float64 `json:"lift"`
	Sales       int     `json:"sales"`
}

// Summary is the dashboard shown to accounts without data.
type Summary struct {
	TotalCampaigns   int64   `json:"totalCampaigns"`
	ActiveCampaigns  int64   `json:"activeCampaigns"`
	TotalAudiences   int64   `json:"totalAudiences"`
	TotalSubscribers int64   `json:"totalSubscribers"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AvgOpenRate      float64 `json:"avgOpenRate"`
	AvgClickRate     float64 `json:"avgClickRate"`
}

// DashboardSummary returns the fixed demo dashboard figures.
func DashboardSummary() Summary {
	return Summary{
		TotalCampaigns:   27990,
		ActiveCampaigns:  6,
		TotalAudiences:   24816,
		TotalSubscribers: 24300,
		TotalRevenue:     87620,
		AvgOpenRate:      39.5,
		AvgClickRate:     4.27,
	}
}

// Generator draws demo values from a seeded source. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator for seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint: gosec
}

// SeedFor derives a stable seed from key, so the same caller always sees the
// same demo data.
func SeedFor(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))

	return h.Sum64()
}

// between returns a value in [lo, hi).
func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Recommendations suggests up to four other catalogue products for
// productID, most confident first.
func (g *Generator) Recommendations(productID string) []Recommendation {
	out := make([]Recommendation, 0, 4)
	for _, p := range Products {
		if p.ID == productID {
			continue
		}
		if len(out) == cap(out) {
			break
		}
		out = append(out, Recommendation{
			ProductID:   p.ID,
			ProductName: p.Name,
			Confidence:  g.between(0.6, 1.0),
			Support:     g.between(0.1, 0.4),
			Lift:        g.between(1.5, 3.5),
			Sales:       100 + g.rng.IntN(500),
		})
	}
	slices.SortStableFunc(out, func(a, b Recommendation) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return out
}

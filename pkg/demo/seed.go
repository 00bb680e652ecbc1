package demo

import (
	"context"
	"fmt"

	"campaigner/pkg/storage"
)

// SeedResult counts what Seed wrote.
type SeedResult struct {
	Audiences   int
	Campaigns   int
	Records     int
	Subscribers int
}

// Seed writes ds through st. Campaigns are stored one by one so their
// performance rows can reference the generated ids. Run it inside a
// transaction to get all or nothing.
func Seed(ctx context.Context, st storage.AllStorage, ds Dataset) (SeedResult, error) {
	var res SeedResult

	for _, a := range ds.Audiences {
		if _, err := st.StoreAudience(ctx, a); err != nil {
			return res, fmt.Errorf("could not store demo audience: %w", err)
		}
		res.Audiences++
	}

	for _, sc := range ds.Campaigns {
		c, err := st.StoreCampaign(ctx, sc.Campaign)
		if err != nil {
			return res, fmt.Errorf("could not store demo campaign: %w", err)
		}
		res.Campaigns++

		if sc.Performance == nil {
			continue
		}
		record := *sc.Performance
		record.CampaignID = c.ID
		if _, err := st.StorePerformanceRecords(ctx, record); err != nil {
			return res, fmt.Errorf("could not store demo performance: %w", err)
		}
		res.Records++
	}

	if len(ds.Subscribers) > 0 {
		stored, err := st.StoreSubscribers(ctx, ds.Subscribers...)
		if err != nil {
			return res, fmt.Errorf("could not store demo subscribers: %w", err)
		}
		res.Subscribers = len(stored)
	}

	return res, nil
}

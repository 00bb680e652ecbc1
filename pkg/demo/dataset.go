package demo

import (
	"fmt"
	"time"

	"campaigner/pkg/domain"
)

// SeedCampaign is a demo campaign with the performance it will be stored with.
// Performance is nil for campaigns that were never sent.
type SeedCampaign struct {
	Campaign    domain.Campaign
	Performance *domain.PerformanceRecord
}

// Dataset is a complete set of demo rows for one user.
type Dataset struct {
	Audiences   []domain.Audience
	Campaigns   []SeedCampaign
	Subscribers []domain.Subscriber
}

var (
	audienceNames = []string{"Newsletter", "VIP Customers", "Trial Users", "Lapsed Buyers"} //nolint: gochecknoglobals
	subjects      = []string{                                                                //nolint: gochecknoglobals
		"Save 20% this weekend!",
		"New arrivals are here",
		"Did you forget something?",
		"Your $10 reward is waiting",
		"Top picks for you",
		"Last chance: sale ends tonight",
	}
	segments = []domain.Segment{ //nolint: gochecknoglobals
		domain.SegmentGeneral,
		domain.SegmentHighValue,
		domain.SegmentNewSubscribers,
		domain.SegmentReEngagement,
	}
	firstNames = []string{"Ava", "Noah", "Mia", "Liam", "Zoe", "Omar", "Ivy", "Kai"} //nolint: gochecknoglobals
	lastNames  = []string{"Stone", "Reyes", "Park", "Okafor", "Novak", "Silva"}     //nolint: gochecknoglobals
)

// Dataset builds demo audiences, campaigns with performance, and subscribers
// for userID. Timestamps are spread over the weeks before now.
func (g *Generator) Dataset(userID domain.UserID, now time.Time, subscribers int) Dataset {
	var ds Dataset

	for _, name := range audienceNames {
		ds.Audiences = append(ds.Audiences, domain.Audience{
			UserID:          userID,
			Name:            fmt.Sprintf("[Demo] %s", name),
			Description:     "Sample audience generated for demonstration.",
			Criteria:        map[string]any{Label: true},
			SubscriberCount: 200 + g.rng.IntN(4800),
		})
	}

	for i, subject := range subjects {
		sentAt := now.Add(-time.Duration(len(subjects)-i) * 7 * 24 * time.Hour).UTC()
		c := domain.Campaign{
			UserID:  userID,
			Name:    fmt.Sprintf("[Demo] Campaign %d", i+1),
			Subject: subject,
			Segment: segments[g.rng.IntN(len(segments))],
			Status:  domain.CampaignStatusSent,
			SentAt:  sentAt,
		}
		if i == len(subjects)-1 {
			c.Status = domain.CampaignStatusDraft
			c.SentAt = time.Time{}
			ds.Campaigns = append(ds.Campaigns, SeedCampaign{Campaign: c})

			continue
		}

		sent := int64(1000 + g.rng.IntN(9000))
		delivered := sent - int64(g.between(0.005, 0.03)*float64(sent))
		opened := int64(g.between(0.15, 0.35) * float64(delivered))
		clicked := int64(g.between(0.02, 0.05) * float64(delivered))
		ds.Campaigns = append(ds.Campaigns, SeedCampaign{
			Campaign: c,
			Performance: &domain.PerformanceRecord{
				UserID:            userID,
				SentCount:         sent,
				DeliveredCount:    delivered,
				OpenedCount:       opened,
				ClickedCount:      clicked,
				BouncedCount:      sent - delivered,
				UnsubscribedCount: int64(g.rng.IntN(20)),
				RevenueGenerated:  float64(clicked) * g.between(0.02, 0.06) * 75,
				UpdatedAt:         sentAt.Add(48 * time.Hour),
			},
		})
	}

	for i := range subscribers {
		status := domain.SubscriberStatusActive
		switch r := g.rng.Float64(); {
		case r < 0.05:
			status = domain.SubscriberStatusBounced
		case r < 0.12:
			status = domain.SubscriberStatusUnsubscribed
		}
		ds.Subscribers = append(ds.Subscribers, domain.Subscriber{
			UserID:       userID,
			Email:        fmt.Sprintf("demo+%d@example.com", i+1),
			FirstName:    firstNames[g.rng.IntN(len(firstNames))],
			LastName:     lastNames[g.rng.IntN(len(lastNames))],
			Status:       status,
			Tags:         []string{Label},
			SubscribedAt: now.Add(-time.Duration(g.rng.IntN(365*24)) * time.Hour).UTC(),
		})
	}

	return ds
}

// Package reporting builds the read-only account views: the dashboard, the
// analytics overview and the latest-campaign insight. Accounts without any
// data get demo figures that are flagged as such.
package reporting

import (
	"context"
	"fmt"

	"campaigner/pkg/demo"
	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
	"campaigner/pkg/logger"
	"campaigner/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentCampaigns  = 5
	overviewCampaign = 100
)

type reporter struct {
	storage storage.Storage
}

func percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return 100 * float64(part) / float64(total)
}

func summarize(p storage.CampaignPerformance) CampaignSummary {
	return CampaignSummary{
		ID:        p.Campaign,
		Name:      p.Name,
		Subject:   p.Subject,
		Status:    p.Status,
		Sent:      p.Record.SentCount,
		Opened:    p.Record.OpenedCount,
		Clicked:   p.Record.ClickedCount,
		Revenue:   p.Record.RevenueGenerated,
		OpenRate:  percent(p.Record.OpenedCount, p.Record.SentCount),
		ClickRate: percent(p.Record.ClickedCount, p.Record.SentCount),
	}
}

// Dashboard reads all sources concurrently. Active subscribers are counted;
// average rates are over all sent volume.
func (r *reporter) Dashboard(ctx context.Context, userID domain.UserID) (Dashboard, error) {
	var (
		statuses    map[domain.CampaignStatus]int64
		audiences   []domain.Audience
		subscribers map[domain.SubscriberStatus]int64
		totals      storage.AnalyticsTotals
		campaigns   []domain.Campaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		statuses, err = r.storage.CampaignStatusCounts(gctx, userID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		audiences, err = r.storage.UserAudiences(gctx, userID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		subscribers, err = r.storage.SubscriberCounts(gctx, userID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		totals, err = r.storage.AnalyticsTotals(gctx, userID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		campaigns, err = r.storage.UserCampaigns(gctx, userID, "", recentCampaigns)

		return err //nolint: wrapcheck
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("could not load dashboard: %w", err)
	}

	var totalCampaigns, activeCampaigns int64
	for status, n := range statuses {
		totalCampaigns += n
		if status.Active() {
			activeCampaigns += n
		}
	}
	activeSubscribers := subscribers[domain.SubscriberStatusActive]

	if totalCampaigns == 0 && len(audiences) == 0 && activeSubscribers == 0 {
		logger.Debug(ctx, "no account data, serving demo dashboard", zap.Stringer("userID", userID))
		s := demo.DashboardSummary()

		return Dashboard{
			Demo:             true,
			TotalCampaigns:   s.TotalCampaigns,
			ActiveCampaigns:  s.ActiveCampaigns,
			TotalAudiences:   s.TotalAudiences,
			TotalSubscribers: s.TotalSubscribers,
			TotalRevenue:     s.TotalRevenue,
			AvgOpenRate:      s.AvgOpenRate,
			AvgClickRate:     s.AvgClickRate,
			RecentCampaigns:  []CampaignSummary{},
		}, nil
	}

	ids := make([]domain.CampaignID, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	latest := make(map[domain.CampaignID]storage.CampaignPerformance, len(ids))
	if len(ids) > 0 {
		performances, err := r.storage.LatestCampaignPerformances(ctx, userID, ids)
		if err != nil {
			return Dashboard{}, fmt.Errorf("could not load recent campaign performance: %w", err)
		}
		for _, p := range performances {
			latest[p.Campaign] = p
		}
	}
	recent := make([]CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		p, ok := latest[c.ID]
		if !ok {
			p = storage.CampaignPerformance{Campaign: c.ID}
		}
		p.Name, p.Subject, p.Status = c.Name, c.Subject, c.Status
		recent = append(recent, summarize(p))
	}

	return Dashboard{
		TotalCampaigns:   totalCampaigns,
		ActiveCampaigns:  activeCampaigns,
		TotalAudiences:   int64(len(audiences)),
		TotalSubscribers: activeSubscribers,
		TotalRevenue:     totals.Revenue,
		AvgOpenRate:      percent(totals.Opened, totals.Sent),
		AvgClickRate:     percent(totals.Clicked, totals.Sent),
		RecentCampaigns:  recent,
	}, nil
}

// Overview returns account totals with rates over sent volume, plus the most
// recent campaign records.
func (r *reporter) Overview(ctx context.Context, userID domain.UserID) (Overview, error) {
	var (
		totals       storage.AnalyticsTotals
		performances []storage.CampaignPerformance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = r.storage.AnalyticsTotals(gctx, userID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		performances, err = r.storage.CampaignPerformances(gctx, userID, overviewCampaign)

		return err //nolint: wrapcheck
	})
	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("could not load analytics: %w", err)
	}

	o := Overview{
		Records:         totals.Records,
		Sent:            totals.Sent,
		Delivered:       totals.Delivered,
		Opened:          totals.Opened,
		Clicked:         totals.Clicked,
		Bounced:         totals.Bounced,
		Unsubscribed:    totals.Unsubscribed,
		Revenue:         totals.Revenue,
		DeliveryRate:    percent(totals.Delivered, totals.Sent),
		OpenRate:        percent(totals.Opened, totals.Sent),
		ClickRate:       percent(totals.Clicked, totals.Sent),
		BounceRate:      percent(totals.Bounced, totals.Sent),
		UnsubscribeRate: percent(totals.Unsubscribed, totals.Sent),
		Campaigns:       make([]CampaignSummary, 0, len(performances)),
	}
	for _, p := range performances {
		o.Campaigns = append(o.Campaigns, summarize(p))
	}

	return o, nil
}

func (r *reporter) Insight(ctx context.Context, userID domain.UserID) (estimate.Insight, bool, error) {
	records, err := r.storage.RecentPerformanceRecords(ctx, userID, 1)
	if err != nil {
		return estimate.Insight{}, false, fmt.Errorf("could not get latest performance: %w", err)
	}
	if len(records) == 0 {
		return estimate.Insight{}, false, nil
	}

	insight, ok := estimate.PerformanceInsight(records[0])

	return insight, ok, nil
}

func (r *reporter) Recommendations(userID domain.UserID, productID string) []demo.Recommendation {
	if productID == "" {
		productID = demo.DefaultProduct
	}

	return demo.New(demo.SeedFor(userID.String() + "/" + productID)).Recommendations(productID)
}

// New creates a new Reporter backed by the provided storage.
func New(storage storage.Storage) Reporter {
	return &reporter{storage: storage}
}

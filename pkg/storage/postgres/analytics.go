package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"campaigner/pkg/domain"
	"campaigner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	analyticsTable = "campaign_analytics"
)

func (p *PgSQL) StorePerformanceRecords(ctx context.Context,
	records ...domain.PerformanceRecord) ([]domain.PerformanceRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]PgPerformanceRecord, len(records))
	for i := range records {
		rows[i].FromDomain(records[i])
	}

	var result []PgPerformanceRecord
	if err := p.Builder.Insert(analyticsTable).
		Rows(rows).
		Returning(&PgPerformanceRecord{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store performance records into pg: %w", err)
	}

	return pgRecordsToDomain(result), nil
}

// RecentPerformanceRecords orders by updated_at DESC, id DESC so that equal
// timestamps still produce a stable sample.
func (p *PgSQL) RecentPerformanceRecords(ctx context.Context,
	userID domain.UserID,
	limit uint) ([]domain.PerformanceRecord, error) {
	ds := p.Builder.From(analyticsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("updated_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgPerformanceRecord
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent performance records from pg: %w", err)
	}

	return pgRecordsToDomain(rows), nil
}

func sumAs(column string) exp.AliasedExpression {
	return goqu.L("COALESCE(SUM(?), 0)::BIGINT", goqu.I(column)).As(column)
}

func (p *PgSQL) AnalyticsTotals(ctx context.Context, userID domain.UserID) (storage.AnalyticsTotals, error) {
	var row struct {
		Records      int64           `db:"records"`
		Sent         int64           `db:"sent_count"`
		Delivered    int64           `db:"delivered_count"`
		Opened       int64           `db:"opened_count"`
		Clicked      int64           `db:"clicked_count"`
		Bounced      int64           `db:"bounced_count"`
		Unsubscribed int64           `db:"unsubscribed_count"`
		Revenue      decimal.Decimal `db:"revenue_generated"`
	}
	if _, err := p.Builder.From(analyticsTable).
		Select(
			goqu.COUNT("*").As("records"),
			sumAs("sent_count"),
			sumAs("delivered_count"),
			sumAs("opened_count"),
			sumAs("clicked_count"),
			sumAs("bounced_count"),
			sumAs("unsubscribed_count"),
			goqu.L("COALESCE(SUM(revenue_generated), 0)").As("revenue_generated"),
		).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return storage.AnalyticsTotals{}, fmt.Errorf("could not sum analytics in pg: %w", err)
	}

	return storage.AnalyticsTotals{
		Records:      row.Records,
		Sent:         row.Sent,
		Delivered:    row.Delivered,
		Opened:       row.Opened,
		Clicked:      row.Clicked,
		Bounced:      row.Bounced,
		Unsubscribed: row.Unsubscribed,
		Revenue:      row.Revenue.InexactFloat64(),
	}, nil
}

type pgCampaignPerformance struct {
	PgPerformanceRecord

	Name    string       `db:"campaign_name"`
	Subject string       `db:"campaign_subject"`
	Status  string       `db:"campaign_status"`
	SentAt  sql.NullTime `db:"campaign_sent_at"`
}

func (p *PgSQL) performancesDataset(userID domain.UserID) *goqu.SelectDataset {
	return p.Builder.From(goqu.T(analyticsTable).As("a")).
		Join(goqu.T(campaignsTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("a.campaign_id")))).
		Select(
			goqu.I("a.id"),
			goqu.I("a.user_id"),
			goqu.I("a.campaign_id"),
			goqu.I("a.sent_count"),
			goqu.I("a.delivered_count"),
			goqu.I("a.opened_count"),
			goqu.I("a.clicked_count"),
			goqu.I("a.bounced_count"),
			goqu.I("a.unsubscribed_count"),
			goqu.I("a.revenue_generated"),
			goqu.I("a.updated_at"),
			goqu.I("c.name").As("campaign_name"),
			goqu.I("c.subject").As("campaign_subject"),
			goqu.I("c.status").As("campaign_status"),
			goqu.I("c.sent_at").As("campaign_sent_at"),
		).
		Where(goqu.I("a.user_id").Eq(uuid.UUID(userID)))
}

func scanPerformances(ctx context.Context, ds *goqu.SelectDataset) ([]storage.CampaignPerformance, error) {
	var rows []pgCampaignPerformance
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch campaign performances from pg: %w", err)
	}

	out := make([]storage.CampaignPerformance, 0, len(rows))
	for i := range rows {
		r := rows[i]
		var sentAt time.Time
		if r.SentAt.Valid {
			sentAt = r.SentAt.Time
		}
		out = append(out, storage.CampaignPerformance{
			Record:   r.ToDomain(),
			Name:     r.Name,
			Subject:  r.Subject,
			Status:   domain.CampaignStatus(r.Status),
			SentAt:   sentAt,
			Campaign: domain.CampaignID(r.CampaignID),
		})
	}

	return out, nil
}

// CampaignPerformances joins records with their campaign, most recent first.
func (p *PgSQL) CampaignPerformances(ctx context.Context,
	userID domain.UserID,
	limit uint) ([]storage.CampaignPerformance, error) {
	ds := p.performancesDataset(userID).
		Order(goqu.I("a.updated_at").Desc(), goqu.I("a.id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	return scanPerformances(ctx, ds)
}

// LatestCampaignPerformances picks one row per campaign with DISTINCT ON, so
// the result never exceeds len(campaignIDs) rows.
func (p *PgSQL) LatestCampaignPerformances(ctx context.Context,
	userID domain.UserID,
	campaignIDs []domain.CampaignID) ([]storage.CampaignPerformance, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		ids = append(ids, id.String())
	}
	ds := p.performancesDataset(userID).
		Distinct(goqu.I("a.campaign_id")).
		Where(goqu.I("a.campaign_id").In(ids)).
		Order(goqu.I("a.campaign_id").Asc(), goqu.I("a.updated_at").Desc(), goqu.I("a.id").Desc())

	return scanPerformances(ctx, ds)
}

func pgRecordsToDomain(rows []PgPerformanceRecord) []domain.PerformanceRecord {
	out := make([]domain.PerformanceRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

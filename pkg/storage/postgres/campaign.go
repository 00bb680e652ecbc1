package postgres

import (
	"context"
	"fmt"

	"campaigner/pkg/domain"
	"campaigner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	campaignsTable = "campaigns"
)

func (p *PgSQL) StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	var row PgCampaign
	row.FromDomain(campaign)

	var result PgCampaign
	if _, err := p.Builder.Insert(campaignsTable).
		Rows(row).
		Returning(&PgCampaign{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store campaign into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func campaignUpdateRecord(updates storage.CampaignUpdates) goqu.Record {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Subject != nil {
		rec["subject"] = *updates.Subject
	}
	if updates.PreviewText != nil {
		rec["preview_text"] = *updates.PreviewText
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Segment != nil {
		rec["segment"] = string(*updates.Segment)
	}
	switch {
	case updates.ClearAudience:
		rec["audience_id"] = goqu.L("NULL")
	case updates.AudienceID != nil:
		rec["audience_id"] = uuid.UUID(*updates.AudienceID)
	}
	if updates.ScheduledAt != nil {
		rec["scheduled_at"] = *updates.ScheduledAt
	}
	if updates.SentAt != nil {
		rec["sent_at"] = *updates.SentAt
	}
	if updates.DesignJSON != nil {
		rec["design_json"] = string(updates.DesignJSON)
	}
	if updates.DesignStatus != nil {
		rec["design_status"] = string(*updates.DesignStatus)
	}
	if updates.EmailHTML != nil {
		rec["email_html"] = *updates.EmailHTML
	}

	return rec
}

// UpdateCampaign applies the non-nil fields of updates. It returns nil, nil
// when the campaign does not exist for the user or IfDesignStatus does not
// match.
func (p *PgSQL) UpdateCampaign(ctx context.Context,
	userID domain.UserID,
	id domain.CampaignID,
	updates storage.CampaignUpdates) (*domain.Campaign, error) {
	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if updates.IfDesignStatus != nil {
		w = append(w, goqu.I("design_status").Eq(string(*updates.IfDesignStatus)))
	}

	var row PgCampaign
	found, err := p.Builder.Update(campaignsTable).
		Set(campaignUpdateRecord(updates)).Where(w...).
		Returning(&PgCampaign{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update campaign in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteCampaign removes the campaign; analytics and predictions cascade.
func (p *PgSQL) DeleteCampaign(ctx context.Context, userID domain.UserID, id domain.CampaignID) (bool, error) {
	res, err := p.Builder.Delete(campaignsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete campaign in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted campaign count: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) CampaignByID(ctx context.Context, userID domain.UserID, id domain.CampaignID) (*domain.Campaign, error) {
	var row PgCampaign
	found, err := p.Builder.From(campaignsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch campaign by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserCampaigns returns campaigns ordered by created_at DESC, id DESC.
func (p *PgSQL) UserCampaigns(ctx context.Context,
	userID domain.UserID,
	status domain.CampaignStatus,
	limit uint) ([]domain.Campaign, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	ds := p.Builder.From(campaignsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgCampaign
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user campaigns from pg: %w", err)
	}

	out := make([]domain.Campaign, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CampaignStatusCounts(ctx context.Context, userID domain.UserID) (map[domain.CampaignStatus]int64, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(campaignsTable).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count campaigns by status: %w", err)
	}

	out := make(map[domain.CampaignStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.CampaignStatus(r.Status)] = r.Count
	}

	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"campaigner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	predictionsTable = "revenue_predictions"
)

func (p *PgSQL) StorePrediction(ctx context.Context,
	prediction domain.PredictionSnapshot) (*domain.PredictionSnapshot, error) {
	var row PgPrediction
	if err := row.FromDomain(prediction); err != nil {
		return nil, err
	}

	var result PgPrediction
	if _, err := p.Builder.Insert(predictionsTable).
		Rows(row).
		Returning(&PgPrediction{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store prediction into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) CampaignPredictions(ctx context.Context,
	userID domain.UserID,
	campaignID domain.CampaignID,
	limit uint) ([]domain.PredictionSnapshot, error) {
	ds := p.Builder.From(predictionsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("campaign_id").Eq(uuid.UUID(campaignID)),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgPrediction
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch campaign predictions from pg: %w", err)
	}

	out := make([]domain.PredictionSnapshot, 0, len(rows))
	for i := range rows {
		s, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, nil
}

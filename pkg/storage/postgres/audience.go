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
	audiencesTable = "audiences"
)

func (p *PgSQL) StoreAudience(ctx context.Context, audience domain.Audience) (*domain.Audience, error) {
	var row PgAudience
	if err := row.FromDomain(audience); err != nil {
		return nil, err
	}

	var result PgAudience
	if _, err := p.Builder.Insert(audiencesTable).
		Rows(row).
		Returning(&PgAudience{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store audience into pg: %w", err)
	}

	return result.ToDomain()
}

// UpdateAudience sets the non-nil fields of updates and bumps updated_at.
func (p *PgSQL) UpdateAudience(ctx context.Context,
	userID domain.UserID,
	id domain.AudienceID,
	updates storage.AudienceUpdates) (*domain.Audience, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.SubscriberCount != nil {
		rec["subscriber_count"] = max(*updates.SubscriberCount, 0)
	}
	if updates.Criteria != nil {
		criteria, err := marshalCriteria(updates.Criteria)
		if err != nil {
			return nil, err
		}
		rec["criteria"] = criteria
	}

	var row PgAudience
	found, err := p.Builder.Update(audiencesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	).Returning(&PgAudience{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update audience in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteAudience(ctx context.Context, userID domain.UserID, id domain.AudienceID) (bool, error) {
	res, err := p.Builder.Delete(audiencesTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete audience in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted audience count: %w", err)
	}

	return n > 0, nil
}

// AudienceByID returns nil, nil when the audience does not exist or belongs
// to another user.
func (p *PgSQL) AudienceByID(ctx context.Context, userID domain.UserID, id domain.AudienceID) (*domain.Audience, error) {
	var row PgAudience
	found, err := p.Builder.From(audiencesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch audience by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UserAudiences(ctx context.Context, userID domain.UserID) ([]domain.Audience, error) {
	var rows []PgAudience
	if err := p.Builder.From(audiencesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user audiences from pg: %w", err)
	}

	out := make([]domain.Audience, 0, len(rows))
	for i := range rows {
		a, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, nil
}

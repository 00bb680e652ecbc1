package postgres

import (
	"context"
	"fmt"

	"campaigner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	subscribersTable = "subscribers"
)

// StoreSubscribers skips rows whose (user_id, email) already exists; only the
// inserted rows are returned.
func (p *PgSQL) StoreSubscribers(ctx context.Context, subscribers ...domain.Subscriber) ([]domain.Subscriber, error) {
	if len(subscribers) == 0 {
		return nil, nil
	}

	rows := make([]PgSubscriber, len(subscribers))
	for i := range subscribers {
		if err := rows[i].FromDomain(subscribers[i]); err != nil {
			return nil, err
		}
	}

	var result []PgSubscriber
	if err := p.Builder.Insert(subscribersTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSubscriber{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store subscribers into pg: %w", err)
	}

	out := make([]domain.Subscriber, 0, len(result))
	for i := range result {
		s, err := result[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	return out, nil
}

func (p *PgSQL) SubscriberCounts(ctx context.Context, userID domain.UserID) (map[domain.SubscriberStatus]int64, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(subscribersTable).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count subscribers by status: %w", err)
	}

	out := make(map[domain.SubscriberStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.SubscriberStatus(r.Status)] = r.Count
	}

	return out, nil
}

package postgres_test

import (
	"context"
	"testing"

	"campaigner/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Subscribers(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	stored, err := pg.StoreSubscribers(ctx,
		domain.Subscriber{UserID: userID, Email: "a@example.com", Tags: []string{"vip"}},
		domain.Subscriber{UserID: userID, Email: "b@example.com", Status: domain.SubscriberStatusUnsubscribed},
		domain.Subscriber{UserID: userID, Email: "c@example.com", Status: domain.SubscriberStatusActive},
	)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	byEmail := map[string]domain.Subscriber{}
	for _, s := range stored {
		byEmail[s.Email] = s
	}
	require.Equal(t, []string{"vip"}, byEmail["a@example.com"].Tags)
	require.Equal(t, domain.SubscriberStatusActive, byEmail["a@example.com"].Status)

	// duplicate email for the same user is skipped
	again, err := pg.StoreSubscribers(ctx, domain.Subscriber{UserID: userID, Email: "a@example.com"})
	require.NoError(t, err)
	require.Empty(t, again)

	counts, err := pg.SubscriberCounts(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, map[domain.SubscriberStatus]int64{
		domain.SubscriberStatusActive:       2,
		domain.SubscriberStatusUnsubscribed: 1,
	}, counts)

	none, err := pg.StoreSubscribers(ctx)
	require.NoError(t, err)
	require.Nil(t, none)
}

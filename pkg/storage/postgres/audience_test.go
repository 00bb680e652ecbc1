package postgres_test

import (
	"context"
	"testing"

	"campaigner/pkg/domain"
	"campaigner/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Audiences(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	otherUser := domain.UserID(uuid.New())

	stored, err := pg.StoreAudience(ctx, domain.Audience{
		UserID:          userID,
		Name:            "VIP",
		Description:     "top spenders",
		Criteria:        map[string]any{"minOrders": float64(3)},
		SubscriberCount: 600,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.AudienceID{}, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, map[string]any{"minOrders": float64(3)}, stored.Criteria)

	t.Run("by id is scoped to the owner", func(t *testing.T) {
		got, err := pg.AudienceByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, 600, got.SubscriberCount)

		got, err = pg.AudienceByID(ctx, otherUser, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("update changes only given fields", func(t *testing.T) {
		count := 750
		updated, err := pg.UpdateAudience(ctx, userID, stored.ID, storage.AudienceUpdates{SubscriberCount: &count})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, 750, updated.SubscriberCount)
		require.Equal(t, "VIP", updated.Name)
		require.Equal(t, "top spenders", updated.Description)

		missing, err := pg.UpdateAudience(ctx, otherUser, stored.ID, storage.AudienceUpdates{SubscriberCount: &count})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("list newest first", func(t *testing.T) {
		_, err := pg.StoreAudience(ctx, domain.Audience{UserID: userID, Name: "Newcomers"})
		require.NoError(t, err)

		list, err := pg.UserAudiences(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Newcomers", list[0].Name)
		require.Equal(t, map[string]any{}, list[0].Criteria)

		none, err := pg.UserAudiences(ctx, otherUser)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pg.DeleteAudience(ctx, otherUser, stored.ID)
		require.NoError(t, err)
		require.False(t, deleted)

		deleted, err = pg.DeleteAudience(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pg.AudienceByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

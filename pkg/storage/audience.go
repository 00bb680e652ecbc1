package storage

import (
	"context"

	"campaigner/pkg/domain"
)

// AudienceUpdates describes the optional fields applied to an audience. Only
// non-nil fields are changed.
type AudienceUpdates struct {
	Name            *string
	Description     *string
	Criteria        map[string]any
	SubscriberCount *int
}

// AudienceStorage stores audiences. Every read and write is scoped to the
// owning user; rows of other users behave as if they did not exist.
type AudienceStorage interface {
	// StoreAudience inserts an audience and returns it with generated fields.
	StoreAudience(ctx context.Context, audience domain.Audience) (*domain.Audience, error)
	// UpdateAudience applies updates and returns the updated row, or nil when
	// the audience was not found.
	UpdateAudience(ctx context.Context,
		userID domain.UserID,
		ID domain.AudienceID,
		updates AudienceUpdates) (*domain.Audience, error)
	// DeleteAudience removes an audience and reports whether a row was deleted.
	DeleteAudience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) (bool, error)
	// AudienceByID returns a single audience, or nil when not found.
	AudienceByID(ctx context.Context, userID domain.UserID, ID domain.AudienceID) (*domain.Audience, error)
	// UserAudiences lists the audiences of a user, newest first.
	UserAudiences(ctx context.Context, userID domain.UserID) ([]domain.Audience, error)
}

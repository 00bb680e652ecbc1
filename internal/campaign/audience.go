package campaign

import (
	"context"
	"fmt"
	"strings"

	"campaigner/pkg/domain"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"
)

func validateAudienceName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", serrors.With(serrors.ErrBadRequest, "audience name is required")
	}

	return name, nil
}

func (m *manager) CreateAudience(ctx context.Context,
	userID domain.UserID,
	audience domain.Audience) (*domain.Audience, error) {
	name, err := validateAudienceName(audience.Name)
	if err != nil {
		return nil, err
	}
	if audience.SubscriberCount < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "subscriber count must not be negative")
	}
	audience.UserID = userID
	audience.Name = name

	res, err := m.storage.StoreAudience(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("could not store audience: %w", err)
	}

	return res, nil
}

func (m *manager) UpdateAudience(ctx context.Context,
	userID domain.UserID,
	ID domain.AudienceID,
	updates storage.AudienceUpdates) (*domain.Audience, error) {
	if updates.Name != nil {
		name, err := validateAudienceName(*updates.Name)
		if err != nil {
			return nil, err
		}
		updates.Name = &name
	}
	if updates.SubscriberCount != nil && *updates.SubscriberCount < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "subscriber count must not be negative")
	}

	res, err := m.storage.UpdateAudience(ctx, userID, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update audience: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "audience not found")
	}

	return res, nil
}

// DeleteAudience removes an audience. Campaigns targeting it lose their
// audience rather than being deleted.
func (m *manager) DeleteAudience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) error {
	deleted, err := m.storage.DeleteAudience(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete audience: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "audience not found")
	}

	return nil
}

func (m *manager) Audience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) (*domain.Audience, error) {
	res, err := m.storage.AudienceByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get audience: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "audience not found")
	}

	return res, nil
}

func (m *manager) Audiences(ctx context.Context, userID domain.UserID) ([]domain.Audience, error) {
	res, err := m.storage.UserAudiences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list audiences: %w", err)
	}

	return res, nil
}

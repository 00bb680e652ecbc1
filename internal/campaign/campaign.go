package campaign

import (
	"context"
	"fmt"
	"strings"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"
)

func validateSegment(segment domain.Segment) error {
	if _, err := estimate.SegmentBoosts(segment); err != nil {
		return err //nolint: wrapcheck
	}

	return nil
}

func validateStatus(status domain.CampaignStatus) error {
	if !status.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown campaign status %q", status)
	}

	return nil
}

// checkAudience makes sure the audience exists for the user before a
// campaign is pointed at it.
func (m *manager) checkAudience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) error {
	a, err := m.storage.AudienceByID(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not get audience: %w", err)
	}
	if a == nil {
		return serrors.With(serrors.ErrBadRequest, "audience %s does not exist", ID)
	}

	return nil
}

// CreateCampaign stores a new campaign. Status defaults to draft and the
// segment to general.
func (m *manager) CreateCampaign(ctx context.Context,
	userID domain.UserID,
	campaign domain.Campaign) (*domain.Campaign, error) {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "campaign name is required")
	}
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}
	if err := validateStatus(campaign.Status); err != nil {
		return nil, err
	}
	if campaign.Segment == "" {
		campaign.Segment = domain.SegmentGeneral
	}
	if err := validateSegment(campaign.Segment); err != nil {
		return nil, err
	}
	if campaign.AudienceID != nil {
		if err := m.checkAudience(ctx, userID, *campaign.AudienceID); err != nil {
			return nil, err
		}
	}
	campaign.UserID = userID
	campaign.DesignStatus = domain.DesignStatusReady

	res, err := m.storage.StoreCampaign(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("could not store campaign: %w", err)
	}

	return res, nil
}

func (m *manager) UpdateCampaign(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID,
	updates storage.CampaignUpdates) (*domain.Campaign, error) {
	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "campaign name is required")
		}
		updates.Name = &name
	}
	if updates.Status != nil {
		if err := validateStatus(*updates.Status); err != nil {
			return nil, err
		}
	}
	if updates.Segment != nil {
		if err := validateSegment(*updates.Segment); err != nil {
			return nil, err
		}
	}
	if updates.AudienceID != nil && !updates.ClearAudience {
		if err := m.checkAudience(ctx, userID, *updates.AudienceID); err != nil {
			return nil, err
		}
	}
	// design fields only change through SaveDesign and template imports
	updates.DesignJSON = nil
	updates.DesignStatus = nil
	updates.EmailHTML = nil
	updates.IfDesignStatus = nil

	res, err := m.storage.UpdateCampaign(ctx, userID, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update campaign: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return res, nil
}

func (m *manager) DeleteCampaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) error {
	deleted, err := m.storage.DeleteCampaign(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete campaign: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return nil
}

func (m *manager) Campaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error) {
	res, err := m.storage.CampaignByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get campaign: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return res, nil
}

// Campaigns lists every campaign of the user, optionally filtered by status.
func (m *manager) Campaigns(ctx context.Context,
	userID domain.UserID,
	status domain.CampaignStatus) ([]domain.Campaign, error) {
	if status != "" {
		if err := validateStatus(status); err != nil {
			return nil, err
		}
	}

	res, err := m.storage.UserCampaigns(ctx, userID, status, 0)
	if err != nil {
		return nil, fmt.Errorf("could not list campaigns: %w", err)
	}

	return res, nil
}

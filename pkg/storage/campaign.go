package storage

import (
	"context"
	"encoding/json"
	"time"

	"campaigner/pkg/domain"
)

// CampaignUpdates describes the optional fields applied to a campaign. Only
// non-nil fields are changed; updated_at is always refreshed.
type CampaignUpdates struct {
	Name        *string
	Subject     *string
	PreviewText *string
	Status      *domain.CampaignStatus
	Segment     *domain.Segment
	// AudienceID sets the target audience. ClearAudience takes precedence and
	// sets it to NULL.
	AudienceID    *domain.AudienceID
	ClearAudience bool
	ScheduledAt   *time.Time
	SentAt        *time.Time

	DesignJSON   json.RawMessage
	DesignStatus *domain.DesignStatus
	EmailHTML    *string

	// IfDesignStatus makes the update conditional: it applies only while the
	// stored design status equals it, and otherwise behaves as not found.
	IfDesignStatus *domain.DesignStatus
}

// CampaignStorage stores campaigns, scoped to their owning user.
type CampaignStorage interface {
	// StoreCampaign inserts a campaign and returns it with generated fields.
	StoreCampaign(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error)
	// UpdateCampaign applies updates and returns the updated row, or nil when
	// the campaign was not found.
	UpdateCampaign(ctx context.Context,
		userID domain.UserID,
		ID domain.CampaignID,
		updates CampaignUpdates) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign together with its analytics and
	// predictions, and reports whether a row was deleted.
	DeleteCampaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (bool, error)
	// CampaignByID returns a single campaign, or nil when not found.
	CampaignByID(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
	// UserCampaigns lists campaigns newest first, optionally filtered by status.
	// A zero limit returns every match.
	UserCampaigns(ctx context.Context,
		userID domain.UserID,
		status domain.CampaignStatus,
		limit uint) ([]domain.Campaign, error)
	// CampaignStatusCounts returns the number of campaigns per status.
	CampaignStatusCounts(ctx context.Context, userID domain.UserID) (map[domain.CampaignStatus]int64, error)
}

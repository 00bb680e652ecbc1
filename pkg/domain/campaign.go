package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CampaignID uniquely identifies a campaign.
type CampaignID uuid.UUID

// String returns the canonical UUID text form.
func (c CampaignID) String() string { return uuid.UUID(c).String() }

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSent, CampaignStatusPaused:
		return true
	default:
		return false
	}
}

// Active reports whether the campaign counts as active on the dashboard.
func (s CampaignStatus) Active() bool {
	return s == CampaignStatusSent || s == CampaignStatusScheduled
}

// DesignStatus tracks the editor document of a campaign while a template
// import is being converted in the background.
type DesignStatus string

const (
	DesignStatusReady      DesignStatus = "ready"
	DesignStatusConverting DesignStatus = "converting"
)

// Campaign is an email campaign. DesignJSON is the editor's own document and
// is treated as opaque; EmailHTML is the markup the editor rendered from it.
type Campaign struct {
	ID     CampaignID `json:"id"`
	UserID UserID     `json:"userId"`

	Name        string         `json:"name"`
	Subject     string         `json:"subject"`
	PreviewText string         `json:"previewText"`
	Status      CampaignStatus `json:"status"`
	Segment     Segment        `json:"segment"`
	AudienceID  *AudienceID    `json:"audienceId,omitempty"`

	DesignJSON   json.RawMessage `json:"designJson,omitempty"`
	DesignStatus DesignStatus    `json:"designStatus"`
	EmailHTML    string          `json:"emailHtml,omitempty"`

	ScheduledAt time.Time `json:"scheduledAt"`
	SentAt      time.Time `json:"sentAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

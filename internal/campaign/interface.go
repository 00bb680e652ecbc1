package campaign

import (
	"context"
	"encoding/json"

	"campaigner/pkg/domain"
	"campaigner/pkg/storage"
)

// Design is the editor document of a campaign as handed to the editor.
// Initial is set when the campaign has no saved design yet and JSON holds the
// starter template.
type Design struct {
	JSON    json.RawMessage     `json:"json"`
	HTML    string              `json:"html"`
	Status  domain.DesignStatus `json:"status"`
	Initial bool                `json:"initial"`
}

//go:generate mockgen -package mockcampaign -source=interface.go -destination=mock/mockcampaign.go *
type Manager interface {
	CreateAudience(ctx context.Context, userID domain.UserID, audience domain.Audience) (*domain.Audience, error)
	UpdateAudience(ctx context.Context,
		userID domain.UserID,
		ID domain.AudienceID,
		updates storage.AudienceUpdates) (*domain.Audience, error)
	DeleteAudience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) error
	Audience(ctx context.Context, userID domain.UserID, ID domain.AudienceID) (*domain.Audience, error)
	Audiences(ctx context.Context, userID domain.UserID) ([]domain.Audience, error)

	CreateCampaign(ctx context.Context, userID domain.UserID, campaign domain.Campaign) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context,
		userID domain.UserID,
		ID domain.CampaignID,
		updates storage.CampaignUpdates) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) error
	Campaign(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.Campaign, error)
	Campaigns(ctx context.Context, userID domain.UserID, status domain.CampaignStatus) ([]domain.Campaign, error)

	Design(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (Design, error)
	SaveDesign(ctx context.Context,
		userID domain.UserID,
		ID domain.CampaignID,
		design json.RawMessage,
		html string) (*domain.Campaign, error)
	ImportTemplate(ctx context.Context, userID domain.UserID, ID domain.CampaignID, html string) (*domain.Campaign, error)
	ApplyConvertedDesign(ctx context.Context, userID domain.UserID, ID domain.CampaignID, design json.RawMessage) error

	Predict(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (*domain.PredictionSnapshot, error)
	Predictions(ctx context.Context, userID domain.UserID, ID domain.CampaignID) ([]domain.PredictionSnapshot, error)
}

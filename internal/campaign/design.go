package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campaigner/pkg/beefree"
	"campaigner/pkg/domain"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"

	"github.com/go-faster/jx"
)

// Design returns the stored editor document, or the starter template when
// the campaign has none yet.
func (m *manager) Design(ctx context.Context, userID domain.UserID, ID domain.CampaignID) (Design, error) {
	c, err := m.Campaign(ctx, userID, ID)
	if err != nil {
		return Design{}, err
	}

	d := Design{
		JSON:   c.DesignJSON,
		HTML:   c.EmailHTML,
		Status: c.DesignStatus,
	}
	if len(d.JSON) == 0 {
		d.JSON = beefree.StarterTemplate()
		d.Initial = true
	}

	return d, nil
}

// SaveDesign stores the editor's save(json, html) output. The document must
// be a JSON object; its contents are otherwise opaque.
func (m *manager) SaveDesign(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID,
	design json.RawMessage,
	html string) (*domain.Campaign, error) {
	if !jx.Valid(design) || jx.DecodeBytes(design).Next() != jx.Object {
		return nil, serrors.With(serrors.ErrBadRequest, "design must be a JSON object")
	}

	ready := domain.DesignStatusReady
	res, err := m.storage.UpdateCampaign(ctx, userID, ID, storage.CampaignUpdates{
		DesignJSON:   design,
		DesignStatus: &ready,
		EmailHTML:    &html,
	})
	if err != nil {
		return nil, fmt.Errorf("could not save design: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return res, nil
}

// ImportTemplate marks the campaign as converting and enqueues a conversion
// job in the same transaction, so the job only runs once the mark is visible.
func (m *manager) ImportTemplate(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID,
	html string) (*domain.Campaign, error) {
	if strings.TrimSpace(html) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "template html is required")
	}

	var campaign *domain.Campaign
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		converting := domain.DesignStatusConverting
		res, err := tx.UpdateCampaign(ctx, userID, ID, storage.CampaignUpdates{
			DesignStatus: &converting,
		})
		if err != nil {
			return fmt.Errorf("could not mark campaign as converting: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "campaign not found")
		}
		campaign = res

		if _, err := tx.AddJob(ctx, ConvertTemplateArgs{
			UserID:      userID,
			CampaignID:  ID,
			HTML:        html,
			maxAttempts: m.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not import template: %w", err)
	}

	return campaign, nil
}

// ApplyConvertedDesign stores a converted design and marks the campaign
// ready. It only applies while the campaign is still converting: a design
// saved in the meantime wins and serrors.ErrConflict is returned.
func (m *manager) ApplyConvertedDesign(ctx context.Context,
	userID domain.UserID,
	ID domain.CampaignID,
	design json.RawMessage) error {
	ready := domain.DesignStatusReady
	converting := domain.DesignStatusConverting
	res, err := m.storage.UpdateCampaign(ctx, userID, ID, storage.CampaignUpdates{
		DesignJSON:     design,
		DesignStatus:   &ready,
		IfDesignStatus: &converting,
	})
	if err != nil {
		return fmt.Errorf("could not apply converted design: %w", err)
	}
	if res != nil {
		return nil
	}

	c, err := m.storage.CampaignByID(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not fetch campaign: %w", err)
	}
	if c == nil {
		return serrors.With(serrors.ErrNotFound, "campaign not found")
	}

	return serrors.With(serrors.ErrConflict, "campaign design changed while converting")
}

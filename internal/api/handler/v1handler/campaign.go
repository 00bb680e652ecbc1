package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"campaigner/pkg/domain"
	"campaigner/pkg/serrors"
	"campaigner/pkg/storage"
)

type CreateCampaignRequest struct {
	Name        string                `json:"name"`
	Subject     string                `json:"subject"`
	PreviewText string                `json:"previewText"`
	Status      domain.CampaignStatus `json:"status"`
	Segment     domain.Segment        `json:"segment"`
	AudienceID  *domain.AudienceID    `json:"audienceId"`
	ScheduledAt *time.Time            `json:"scheduledAt"`
}

// UpdateCampaignRequest changes only the fields present in the body. An
// explicit null audienceId detaches the audience.
type UpdateCampaignRequest struct {
	Name        *string                `json:"name"`
	Subject     *string                `json:"subject"`
	PreviewText *string                `json:"previewText"`
	Status      *domain.CampaignStatus `json:"status"`
	Segment     *domain.Segment        `json:"segment"`
	AudienceID  json.RawMessage        `json:"audienceId"`
	ScheduledAt *time.Time             `json:"scheduledAt"`
	SentAt      *time.Time             `json:"sentAt"`
}

func (req UpdateCampaignRequest) updates() (storage.CampaignUpdates, error) {
	u := storage.CampaignUpdates{
		Name:        req.Name,
		Subject:     req.Subject,
		PreviewText: req.PreviewText,
		Status:      req.Status,
		Segment:     req.Segment,
		ScheduledAt: req.ScheduledAt,
		SentAt:      req.SentAt,
	}
	switch {
	case len(req.AudienceID) == 0:
	case string(req.AudienceID) == "null":
		u.ClearAudience = true
	default:
		var id domain.AudienceID
		if err := json.Unmarshal(req.AudienceID, &id); err != nil {
			return u, serrors.With(serrors.ErrBadRequest, "invalid audienceId")
		}
		u.AudienceID = &id
	}

	return u, nil
}

type CampaignList struct {
	Items []domain.Campaign `json:"items"`
}

type SaveDesignRequest struct {
	JSON json.RawMessage `json:"json"`
	HTML string          `json:"html"`
}

type ImportTemplateRequest struct {
	HTML string `json:"html"`
}

// PredictionResponse carries the stored snapshot when Available is set.
// Available is false when the campaign inputs could not be read, and then
// no snapshot is stored.
type PredictionResponse struct {
	Available  bool                       `json:"available"`
	Prediction *domain.PredictionSnapshot `json:"prediction,omitempty"`
}

type PredictionList struct {
	Items []domain.PredictionSnapshot `json:"items"`
}

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.deps.Campaigns.Campaigns(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CampaignStatus(r.URL.Query().Get("status")))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	writeJSON(r.Context(), w, http.StatusOK, CampaignList{Items: campaigns})
}

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c := domain.Campaign{
		Name:        req.Name,
		Subject:     req.Subject,
		PreviewText: req.PreviewText,
		Status:      req.Status,
		Segment:     req.Segment,
		AudienceID:  req.AudienceID,
	}
	if req.ScheduledAt != nil {
		c.ScheduledAt = *req.ScheduledAt
	}

	res, err := h.deps.Campaigns.CreateCampaign(r.Context(), GetUserIDFromContext(r.Context()), c)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, res)
}

func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Campaigns.Campaign(r.Context(), GetUserIDFromContext(r.Context()), domain.CampaignID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, c)
}

func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateCampaignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	updates, err := req.updates()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Campaigns.UpdateCampaign(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CampaignID(id),
		updates)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, c)
}

func (h *Handler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Campaigns.DeleteCampaign(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CampaignID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDesign returns the stored editor document, or the starter template when
// the campaign has none yet.
func (h *Handler) GetDesign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	d, err := h.deps.Campaigns.Design(r.Context(), GetUserIDFromContext(r.Context()), domain.CampaignID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, d)
}

func (h *Handler) SaveDesign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req SaveDesignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Campaigns.SaveDesign(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CampaignID(id),
		req.JSON,
		req.HTML)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, c)
}

// ImportTemplate accepts HTML for background conversion into an editor
// document. The campaign is returned in the converting state.
func (h *Handler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req ImportTemplateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Campaigns.ImportTemplate(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.CampaignID(id),
		req.HTML)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, c)
}

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Campaigns.Predict(r.Context(), GetUserIDFromContext(r.Context()), domain.CampaignID(id))
	if errors.Is(err, serrors.ErrDataUnavailable) {
		writeJSON(r.Context(), w, http.StatusOK, PredictionResponse{})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, PredictionResponse{Available: true, Prediction: p})
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	items, err := h.deps.Campaigns.Predictions(r.Context(), GetUserIDFromContext(r.Context()), domain.CampaignID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if items == nil {
		items = []domain.PredictionSnapshot{}
	}

	writeJSON(r.Context(), w, http.StatusOK, PredictionList{Items: items})
}

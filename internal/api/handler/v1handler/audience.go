package v1handler

import (
	"net/http"

	"campaigner/pkg/domain"
	"campaigner/pkg/storage"
)

type CreateAudienceRequest struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Criteria        map[string]any `json:"criteria"`
	SubscriberCount int            `json:"subscriberCount"`
}

type UpdateAudienceRequest struct {
	Name            *string        `json:"name"`
	Description     *string        `json:"description"`
	Criteria        map[string]any `json:"criteria"`
	SubscriberCount *int           `json:"subscriberCount"`
}

type AudienceList struct {
	Items []domain.Audience `json:"items"`
}

func (h *Handler) ListAudiences(w http.ResponseWriter, r *http.Request) {
	audiences, err := h.deps.Campaigns.Audiences(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if audiences == nil {
		audiences = []domain.Audience{}
	}

	writeJSON(r.Context(), w, http.StatusOK, AudienceList{Items: audiences})
}

func (h *Handler) CreateAudience(w http.ResponseWriter, r *http.Request) {
	var req CreateAudienceRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	a, err := h.deps.Campaigns.CreateAudience(r.Context(), GetUserIDFromContext(r.Context()), domain.Audience{
		Name:            req.Name,
		Description:     req.Description,
		Criteria:        req.Criteria,
		SubscriberCount: req.SubscriberCount,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, a)
}

func (h *Handler) GetAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	a, err := h.deps.Campaigns.Audience(r.Context(), GetUserIDFromContext(r.Context()), domain.AudienceID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, a)
}

func (h *Handler) UpdateAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateAudienceRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	a, err := h.deps.Campaigns.UpdateAudience(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.AudienceID(id),
		storage.AudienceUpdates{
			Name:            req.Name,
			Description:     req.Description,
			Criteria:        req.Criteria,
			SubscriberCount: req.SubscriberCount,
		})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, a)
}

func (h *Handler) DeleteAudience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Campaigns.DeleteAudience(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.AudienceID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

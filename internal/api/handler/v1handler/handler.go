// Package v1handler implements the /v1 HTTP API on top of the campaign,
// estimation, reporting and editor services.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"campaigner/internal/campaign"
	"campaigner/internal/editor"
	"campaigner/internal/estimator"
	"campaigner/internal/reporting"
	"campaigner/pkg/logger"
	"campaigner/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxBodyBytes bounds request bodies. Imported templates are the largest payloads.
const MaxBodyBytes = 4 << 20

type Deps struct {
	Campaigns campaign.Manager
	Estimator estimator.Estimator
	Reporter  reporting.Reporter
	Editor    editor.Editor
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every authenticated v1 endpoint on r. The caller mounts r
// under /v1 and installs the auth middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/audiences", func(r chi.Router) {
		r.Get("/", h.ListAudiences)
		r.Post("/", h.CreateAudience)
		r.Get("/{id}", h.GetAudience)
		r.Put("/{id}", h.UpdateAudience)
		r.Delete("/{id}", h.DeleteAudience)
	})
	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.ListCampaigns)
		r.Post("/", h.CreateCampaign)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetCampaign)
			r.Put("/", h.UpdateCampaign)
			r.Delete("/", h.DeleteCampaign)
			r.Get("/design", h.GetDesign)
			r.Put("/design", h.SaveDesign)
			r.Post("/template", h.ImportTemplate)
			r.Get("/predictions", h.ListPredictions)
			r.Post("/predictions", h.CreatePrediction)
		})
	})
	r.Post("/estimates", h.CreateEstimate)
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/analytics", h.GetAnalytics)
	r.Get("/analytics/insight", h.GetInsight)
	r.Get("/demo/recommendations", h.GetRecommendations)
	r.Post("/editor/token", h.CreateEditorToken)
}

// ErrorBody is the JSON document returned for every failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an ErrorBody with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var statusByKind = map[serrors.Kind]struct {
	status  int
	message string
}{
	serrors.ErrNotFound:             {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:           {http.StatusBadRequest, "bad request"},
	serrors.ErrInvalidSegmentTag:    {http.StatusBadRequest, "invalid segment tag"},
	serrors.ErrUnauthorized:         {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrConflict:             {http.StatusConflict, "conflict"},
	serrors.ErrConfigurationMissing: {http.StatusServiceUnavailable, "feature is not configured"},
	serrors.ErrRateLimited:          {http.StatusTooManyRequests, "rate limited, try again later"},
	serrors.ErrDataUnavailable:      {http.StatusServiceUnavailable, "data unavailable, try again later"},
}

// NewError maps err onto a status code and a caller-facing body. Messages of
// internal errors are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	mapped, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	if kind == serrors.ErrDataUnavailable {
		logger.Warn(ctx, "request data unavailable", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}
	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = mapped.message
	}

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into dst. An empty body is rejected.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid id")
	}

	return id, nil
}

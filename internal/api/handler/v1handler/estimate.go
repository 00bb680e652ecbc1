package v1handler

import (
	"errors"
	"net/http"

	"campaigner/internal/estimator"
	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
	"campaigner/pkg/serrors"
)

// CreateEstimateRequest asks for a projection of a campaign draft. Generation
// and Session let a client that fires one request per keystroke drop
// answers to superseded requests.
type CreateEstimateRequest struct {
	AudienceID domain.AudienceID `json:"audienceId"`
	Subject    string            `json:"subject"`
	Segment    domain.Segment    `json:"segment"`
	Generation uint64            `json:"generation"`
	Session    string            `json:"session"`
}

// EstimateResponse carries the projection when Available is set. Available is
// false when the inputs could not be read, in which case nothing should be
// shown rather than a made-up number.
type EstimateResponse struct {
	Available       bool                   `json:"available"`
	Generation      uint64                 `json:"generation,omitempty"`
	Projection      *domain.Projection     `json:"projection,omitempty"`
	BaseRates       *estimate.Rates        `json:"baseRates,omitempty"`
	SegmentBoost    *estimate.SegmentBoost `json:"segmentBoost,omitempty"`
	SubjectBoost    float64                `json:"subjectBoost,omitempty"`
	HistoricalCount int                    `json:"historicalCount"`
}

func (h *Handler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req CreateEstimateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if req.AudienceID == (domain.AudienceID{}) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "audienceId is required"))

		return
	}

	res, err := h.deps.Estimator.Estimate(r.Context(), GetUserIDFromContext(r.Context()), estimator.Request{
		AudienceID: req.AudienceID,
		Subject:    req.Subject,
		Segment:    req.Segment,
		Generation: req.Generation,
		Session:    req.Session,
	})
	if errors.Is(err, serrors.ErrDataUnavailable) {
		writeJSON(r.Context(), w, http.StatusOK, EstimateResponse{Generation: req.Generation})

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, EstimateResponse{
		Available:       true,
		Generation:      req.Generation,
		Projection:      &res.Projection,
		BaseRates:       &res.Base,
		SegmentBoost:    &res.Boost,
		SubjectBoost:    res.SubjectBoost,
		HistoricalCount: res.HistoricalCount,
	})
}

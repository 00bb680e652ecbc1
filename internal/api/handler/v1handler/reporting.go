package v1handler

import (
	"net/http"

	"campaigner/pkg/demo"
	"campaigner/pkg/estimate"
)

type InsightResponse struct {
	Available bool              `json:"available"`
	Insight   *estimate.Insight `json:"insight,omitempty"`
}

// RecommendationList is always demo data and says so.
type RecommendationList struct {
	Demo      bool                  `json:"demo"`
	Label     string                `json:"label"`
	ProductID string                `json:"productId"`
	Items     []demo.Recommendation `json:"items"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.Reporter.Dashboard(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, d)
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	o, err := h.deps.Reporter.Overview(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, o)
}

func (h *Handler) GetInsight(w http.ResponseWriter, r *http.Request) {
	insight, ok, err := h.deps.Reporter.Insight(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := InsightResponse{Available: ok}
	if ok {
		res.Insight = &insight
	}
	writeJSON(r.Context(), w, http.StatusOK, res)
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	if product == "" {
		product = demo.DefaultProduct
	}

	writeJSON(r.Context(), w, http.StatusOK, RecommendationList{
		Demo:      true,
		Label:     demo.Label,
		ProductID: product,
		Items:     h.deps.Reporter.Recommendations(GetUserIDFromContext(r.Context()), product),
	})
}

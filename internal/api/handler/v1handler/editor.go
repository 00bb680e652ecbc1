package v1handler

import (
	"net/http"

	"campaigner/pkg/logger"

	"go.uber.org/zap"
)

// CreateEditorToken exchanges the configured editor credentials for a session
// token on behalf of the caller. The vendor's token document is passed
// through unchanged.
func (h *Handler) CreateEditorToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.deps.Editor.Token(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(token); err != nil {
		logger.Warn(r.Context(), "could not write editor token", zap.Error(err))
	}
}

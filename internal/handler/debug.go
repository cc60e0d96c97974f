package handler

// debug.go - Debug-only endpoints for inspecting session state
// These handlers are always compiled but only registered when ENVIRONMENT=dev

import (
	"net/http"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/repositories"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// DebugHandler exposes raw session store contents (DEBUG ONLY)
type DebugHandler struct {
	store repositories.ResultStore
}

// NewDebugHandler creates a new debug handler
func NewDebugHandler(store repositories.ResultStore) *DebugHandler {
	return &DebugHandler{store: store}
}

// RawResult dumps the session's full stored result, including the complete
// Markdown that the result view only previews (DEBUG ONLY).
// GET /debug/api/result
func (h *DebugHandler) RawResult(w http.ResponseWriter, r *http.Request) {
	result, ok := h.store.Get(httputil.GetSessionID(r))
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "no conversion result for this session")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"result":   result,
		"sessions": h.store.Len(),
	})
}

package handler

import (
	"net/http"

	"github.com/NIACK18/office-to-markdown-app/internal/catalog"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// FormatsHandler serves the supported-format catalog
type FormatsHandler struct {
	catalog *catalog.Catalog
}

// NewFormatsHandler creates a new formats handler
func NewFormatsHandler(cat *catalog.Catalog) *FormatsHandler {
	return &FormatsHandler{catalog: cat}
}

// FormatsResponse describes what the converter accepts
type FormatsResponse struct {
	Categories []catalog.Category `json:"categories"`
	Extensions []string           `json:"extensions"`
	Accept     string             `json:"accept"` // value for the upload control's accept attribute
}

// Get returns the format catalog
// GET /api/formats
func (h *FormatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, FormatsResponse{
		Categories: h.catalog.Categories(),
		Extensions: h.catalog.Extensions(),
		Accept:     h.catalog.AcceptAttribute(),
	})
}

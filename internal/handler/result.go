package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/services"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// ResultHandler serves the session's stored conversion result
type ResultHandler struct {
	conversionService services.ConversionService
	logger            *slog.Logger
}

// NewResultHandler creates a new result handler
func NewResultHandler(conversionService services.ConversionService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{
		conversionService: conversionService,
		logger:            logger,
	}
}

// Get returns the session's result view (preview and metadata)
// GET /api/result
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.conversionService.Result(httputil.GetSessionID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// Download serves the full Markdown as a file attachment
// GET /api/result/download
func (h *ResultHandler) Download(w http.ResponseWriter, r *http.Request) {
	result, err := h.conversionService.Download(httputil.GetSessionID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName})

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, result.Markdown); err != nil {
		h.logger.Warn("download write failed",
			"file_name", result.FileName,
			"error", err,
		)
	}
}

// Clear removes the session's result
// DELETE /api/result
func (h *ResultHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.conversionService.Clear(httputil.GetSessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NIACK18/office-to-markdown-app/internal/config"
	"github.com/NIACK18/office-to-markdown-app/internal/domain/services"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// ConvertHandler handles conversion HTTP requests
type ConvertHandler struct {
	conversionService services.ConversionService
	logger            *slog.Logger
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(conversionService services.ConversionService, logger *slog.Logger) *ConvertHandler {
	return &ConvertHandler{
		conversionService: conversionService,
		logger:            logger,
	}
}

// Convert converts an uploaded document or a YouTube URL to Markdown and
// stores the result under the session, replacing any prior result.
// POST /api/convert
//
// Multipart form fields:
//   - file: optional, the document to convert
//   - url: optional, a YouTube video URL
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	sessionID := httputil.GetSessionID(r)

	// Cap the request body before touching it; ParseMultipartForm reads
	// everything past the in-memory threshold to disk.
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)

	if err := r.ParseMultipartForm(config.MaxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload too large: the limit is %d MB", config.MaxUploadBytes>>20))
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	sub := &services.Submission{
		VideoURL: r.FormValue("url"),
	}

	// An empty file input also lands on ErrMissingFile: parts with an
	// empty filename are parsed as plain form values.
	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// URL-only submission
	case err != nil:
		httputil.RespondError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	default:
		defer func() { _ = file.Close() }()
		sub.File = file
		sub.Filename = header.Filename
	}

	view, err := h.conversionService.Convert(r.Context(), sessionID, sub)
	if err != nil {
		h.logger.Debug("conversion request rejected",
			"session_id", sessionID,
			"error", err,
		)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

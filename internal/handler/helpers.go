package handler

import (
	"errors"
	"net/http"

	"github.com/NIACK18/office-to-markdown-app/internal/domain"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var convErr *domain.ConversionError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &convErr):
		httputil.RespondErrorWithExtras(w, http.StatusUnprocessableEntity, convErr.Error(), map[string]interface{}{
			"engine": convErr.Engine,
		})
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

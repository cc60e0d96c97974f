package repositories

import (
	"github.com/NIACK18/office-to-markdown-app/internal/domain/models"
)

// ResultStore holds at most one conversion result per session. The data
// model keeps no durable state: implementations live in process memory
// and may drop entries after a TTL.
type ResultStore interface {
	// Put stores the session's result, replacing any previous one.
	Put(sessionID string, result *models.ConversionResult)

	// Get returns the session's current result, or false when none exists.
	Get(sessionID string) (*models.ConversionResult, bool)

	// Clear removes the session's result, if any.
	Clear(sessionID string)

	// Len reports how many results are currently held.
	Len() int
}

package services

import (
	"context"
	"io"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/models"
)

// Submission is one convert request from the page: an uploaded file, a
// video URL, or both. When both are present the file wins.
type Submission struct {
	Filename string    // Original upload name; empty when no file was sent
	File     io.Reader // Upload payload; nil when no file was sent
	VideoURL string    // Raw url field, untrimmed; empty when left blank
}

// Converter turns a validated source into Markdown. Failures surface as
// conversion domain errors with the engine's message.
type Converter interface {
	ConvertUpload(ctx context.Context, filename string, payload io.Reader) (string, error)
	ConvertVideoURL(ctx context.Context, url string) (string, error)

	// Engine names the engine behind this converter, for result metadata.
	Engine() string
}

// ConversionService handles one submission end to end: validate, convert,
// store the result under the caller's session.
type ConversionService interface {
	// Convert validates and converts a submission. On success the result
	// replaces the session's previous one; on failure the previous result
	// is left untouched.
	Convert(ctx context.Context, sessionID string, sub *Submission) (*models.ResultView, error)

	// Result returns the session's current result view.
	Result(sessionID string) (*models.ResultView, error)

	// Download returns the session's full stored result.
	Download(sessionID string) (*models.ConversionResult, error)

	// Clear drops the session's result.
	Clear(sessionID string)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/NIACK18/office-to-markdown-app/internal/catalog"
	"github.com/NIACK18/office-to-markdown-app/internal/config"
	"github.com/NIACK18/office-to-markdown-app/internal/domain"
	"github.com/NIACK18/office-to-markdown-app/internal/domain/models"
	"github.com/NIACK18/office-to-markdown-app/internal/domain/repositories"
	"github.com/NIACK18/office-to-markdown-app/internal/domain/services"
	"github.com/NIACK18/office-to-markdown-app/internal/youtube"
)

// Messages for invalid submissions. The page surfaces these verbatim, so
// the wording is load-bearing.
const (
	msgNothingSubmitted = "Please upload a file or enter a YouTube URL"
	msgInvalidVideoURL  = "Please enter a valid YouTube URL"
)

// previewNotice is appended to previews that cut content off.
const previewNotice = "...\n\n(Preview truncated. Download the full file to see all content.)"

// conversionService implements the ConversionService interface
type conversionService struct {
	converter services.Converter
	store     repositories.ResultStore
	catalog   *catalog.Catalog
	analyzer  services.ContentAnalyzer
	logger    *slog.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(
	conv services.Converter,
	store repositories.ResultStore,
	cat *catalog.Catalog,
	analyzer services.ContentAnalyzer,
	logger *slog.Logger,
) services.ConversionService {
	return &conversionService{
		converter: conv,
		store:     store,
		catalog:   cat,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// Convert validates the submission, runs the conversion and stores the
// result under the session. Validation and conversion failures leave any
// previously stored result untouched.
func (s *conversionService) Convert(ctx context.Context, sessionID string, sub *services.Submission) (*models.ResultView, error) {
	if err := s.validateSubmission(sub); err != nil {
		return nil, err
	}

	// A file wins over a URL when both are present.
	var result *models.ConversionResult
	if sub.File != nil {
		markdown, err := s.converter.ConvertUpload(ctx, sub.Filename, sub.File)
		if err != nil {
			return nil, err
		}
		result = s.buildResult(markdownFileName(sub.Filename), markdown, models.SourceFile, sub.Filename)
	} else {
		markdown, err := s.converter.ConvertVideoURL(ctx, sub.VideoURL)
		if err != nil {
			return nil, err
		}
		result = s.buildResult(videoFileName(sub.VideoURL), markdown, models.SourceYouTube, sub.VideoURL)
	}

	s.store.Put(sessionID, result)

	s.logger.Info("conversion completed",
		"session_id", sessionID,
		"source", result.Source,
		"file_name", result.FileName,
		"length", len(result.Markdown),
		"word_count", result.WordCount,
	)

	return s.view(result), nil
}

// Result returns the session's current result view
func (s *conversionService) Result(sessionID string) (*models.ResultView, error) {
	result, ok := s.store.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: no conversion result for this session", domain.ErrNotFound)
	}
	return s.view(result), nil
}

// Download returns the session's full stored result
func (s *conversionService) Download(sessionID string) (*models.ConversionResult, error) {
	result, ok := s.store.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: no conversion result for this session", domain.ErrNotFound)
	}
	return result, nil
}

// Clear drops the session's result
func (s *conversionService) Clear(sessionID string) {
	s.store.Clear(sessionID)
	s.logger.Debug("session result cleared", "session_id", sessionID)
}

// validateSubmission applies the submission rules, in order: something must
// be present; a non-empty URL must look like a YouTube URL even when a file
// is also attached; an upload must carry an accepted extension. The URL is
// matched untrimmed. Failures come back as ValidationError so the page can
// surface the message verbatim.
func (s *conversionService) validateSubmission(sub *services.Submission) error {
	if err := validation.ValidateStruct(sub,
		validation.Field(&sub.Filename, validation.Length(0, config.MaxFilenameLength)),
		validation.Field(&sub.VideoURL, validation.Length(0, config.MaxVideoURLLength)),
	); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	hasFile := sub.File != nil && sub.Filename != ""
	hasURL := sub.VideoURL != ""

	if !hasFile && !hasURL {
		return &domain.ValidationError{Message: msgNothingSubmitted}
	}
	if hasURL && !youtube.IsVideoURL(sub.VideoURL) {
		return &domain.ValidationError{Message: msgInvalidVideoURL}
	}
	if hasFile && !s.catalog.Accepts(sub.Filename) {
		return &domain.ValidationError{Message: fmt.Sprintf("unsupported file type %q; supported extensions: %s",
			strings.ToLower(filepath.Ext(sub.Filename)), strings.Join(s.catalog.Extensions(), ", "))}
	}

	return nil
}

// buildResult assembles the stored result with its metadata.
func (s *conversionService) buildResult(fileName, markdown string, source models.SourceKind, sourceName string) *models.ConversionResult {
	return &models.ConversionResult{
		FileName:    fileName,
		Markdown:    markdown,
		WordCount:   s.analyzer.CountWords(markdown),
		Source:      source,
		SourceName:  sourceName,
		Engine:      s.converter.Engine(),
		ConvertedAt: time.Now(),
	}
}

// view renders the API shape: the preview in place of the full content.
func (s *conversionService) view(result *models.ConversionResult) *models.ResultView {
	preview, truncated := previewOf(result.Markdown)
	return &models.ResultView{
		FileName:    result.FileName,
		Preview:     preview,
		Truncated:   truncated,
		Length:      utf8.RuneCountInString(result.Markdown),
		WordCount:   result.WordCount,
		Source:      result.Source,
		SourceName:  result.SourceName,
		ConvertedAt: result.ConvertedAt,
	}
}

// previewOf returns the first PreviewCharLimit characters of the content.
// Characters means runes: multi-byte content must not be cut mid-character.
// When content was cut off, the truncation notice is appended.
func previewOf(markdown string) (string, bool) {
	runes := []rune(markdown)
	if len(runes) <= config.PreviewCharLimit {
		return markdown, false
	}
	return string(runes[:config.PreviewCharLimit]) + previewNotice, true
}

// markdownFileName derives the download name from the upload's name: the
// final extension is replaced with .md, so "report.docx" → "report.md".
func markdownFileName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".md"
}

// videoFileName derives the download name from the video URL, keyed by the
// video ID when one can be extracted.
func videoFileName(url string) string {
	if id, ok := youtube.ExtractVideoID(url); ok {
		return "youtube_" + id + ".md"
	}
	return "youtube_video.md"
}

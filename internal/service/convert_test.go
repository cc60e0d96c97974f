package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/NIACK18/office-to-markdown-app/internal/catalog"
	"github.com/NIACK18/office-to-markdown-app/internal/config"
	"github.com/NIACK18/office-to-markdown-app/internal/domain"
	"github.com/NIACK18/office-to-markdown-app/internal/domain/services"
	"github.com/NIACK18/office-to-markdown-app/internal/session"
)

// fakeConverter stands in for the dispatcher and records what it was asked
// to convert.
type fakeConverter struct {
	markdown string
	err      error

	gotFile string
	gotURL  string
	calls   int
}

func (f *fakeConverter) ConvertUpload(ctx context.Context, filename string, payload io.Reader) (string, error) {
	f.calls++
	f.gotFile = filename
	if f.err != nil {
		return "", f.err
	}
	return f.markdown, nil
}

func (f *fakeConverter) ConvertVideoURL(ctx context.Context, url string) (string, error) {
	f.calls++
	f.gotURL = url
	if f.err != nil {
		return "", f.err
	}
	return f.markdown, nil
}

func (f *fakeConverter) Engine() string { return "fake" }

func newTestService(t *testing.T, conv services.Converter) services.ConversionService {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() unexpected error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewConversionService(conv, session.NewStore(time.Hour), cat, NewContentAnalyzer(), logger)
}

func TestConvertRequiresInput(t *testing.T) {
	conv := &fakeConverter{markdown: "# x"}
	svc := newTestService(t, conv)

	_, err := svc.Convert(context.Background(), "sess", &services.Submission{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Convert() error = %v, want validation error", err)
	}
	if err.Error() != "Please upload a file or enter a YouTube URL" {
		t.Errorf("Convert() error = %q, want the exact empty-submission message", err)
	}
	if conv.calls != 0 {
		t.Errorf("converter was invoked %d times for an empty submission", conv.calls)
	}
	if _, resErr := svc.Result("sess"); !errors.Is(resErr, domain.ErrNotFound) {
		t.Errorf("Result() after failed validation = %v, want not-found", resErr)
	}
}

func TestConvertRejectsInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		sub  services.Submission
	}{
		{
			name: "url only",
			sub:  services.Submission{VideoURL: "https://example.com/video"},
		},
		{
			// The URL check runs before the file check: an invalid URL
			// rejects the submission even with a file attached.
			name: "invalid url with file attached",
			sub: services.Submission{
				Filename: "report.docx",
				File:     strings.NewReader("payload"),
				VideoURL: "https://example.com/video",
			},
		},
		{
			name: "leading whitespace breaks the match",
			sub:  services.Submission{VideoURL: " https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := &fakeConverter{markdown: "# x"}
			svc := newTestService(t, conv)

			_, err := svc.Convert(context.Background(), "sess", &tt.sub)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Convert() error = %v, want validation error", err)
			}
			if err.Error() != "Please enter a valid YouTube URL" {
				t.Errorf("Convert() error = %q, want the exact invalid-URL message", err)
			}
			if conv.calls != 0 {
				t.Errorf("converter was invoked %d times for an invalid submission", conv.calls)
			}
		})
	}
}

func TestConvertRejectsUnsupportedExtension(t *testing.T) {
	conv := &fakeConverter{markdown: "# x"}
	svc := newTestService(t, conv)

	_, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "photo.png",
		File:     strings.NewReader("bytes"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Convert() error = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("Convert() error = %q, want unsupported file type message", err)
	}
	if conv.calls != 0 {
		t.Errorf("converter was invoked %d times for an unsupported upload", conv.calls)
	}
}

func TestConvertFileWinsOverValidURL(t *testing.T) {
	conv := &fakeConverter{markdown: "# from file"}
	svc := newTestService(t, conv)

	view, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "slides.pptx",
		File:     strings.NewReader("bytes"),
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if conv.gotFile != "slides.pptx" {
		t.Errorf("converter saw file %q, want slides.pptx", conv.gotFile)
	}
	if conv.gotURL != "" {
		t.Errorf("converter saw url %q, want the URL ignored in favor of the file", conv.gotURL)
	}
	if view.FileName != "slides.md" {
		t.Errorf("view.FileName = %q, want slides.md", view.FileName)
	}
	if view.Source != "file" {
		t.Errorf("view.Source = %q, want file", view.Source)
	}
}

func TestConvertStoresAndOverwrites(t *testing.T) {
	conv := &fakeConverter{markdown: "# first"}
	svc := newTestService(t, conv)

	if _, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "report.docx",
		File:     strings.NewReader("bytes"),
	}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	view, err := svc.Result("sess")
	if err != nil {
		t.Fatalf("Result() unexpected error: %v", err)
	}
	if view.FileName != "report.md" {
		t.Errorf("Result().FileName = %q, want report.md", view.FileName)
	}

	// A second conversion replaces the stored result.
	conv.markdown = "# transcript"
	if _, err := svc.Convert(context.Background(), "sess", &services.Submission{
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
	}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	view, err = svc.Result("sess")
	if err != nil {
		t.Fatalf("Result() unexpected error: %v", err)
	}
	if view.FileName != "youtube_dQw4w9WgXcQ.md" {
		t.Errorf("Result().FileName = %q, want youtube_dQw4w9WgXcQ.md", view.FileName)
	}
	if view.Source != "youtube" {
		t.Errorf("Result().Source = %q, want youtube", view.Source)
	}
	if view.SourceName != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("Result().SourceName = %q, want the submitted URL", view.SourceName)
	}
}

func TestConvertFailurePreservesPriorResult(t *testing.T) {
	conv := &fakeConverter{markdown: "# good"}
	svc := newTestService(t, conv)

	if _, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "good.docx",
		File:     strings.NewReader("bytes"),
	}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	conv.err = &domain.ConversionError{Message: "engine exploded", Engine: "fake"}
	_, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "bad.pdf",
		File:     strings.NewReader("bytes"),
	})
	if !errors.Is(err, domain.ErrConversion) {
		t.Fatalf("Convert() error = %v, want conversion error", err)
	}

	view, resErr := svc.Result("sess")
	if resErr != nil {
		t.Fatalf("Result() unexpected error: %v", resErr)
	}
	if view.FileName != "good.md" {
		t.Errorf("Result().FileName = %q, want the prior result preserved", view.FileName)
	}
}

func TestVideoNamingWithoutExtractableID(t *testing.T) {
	conv := &fakeConverter{markdown: "# page"}
	svc := newTestService(t, conv)

	// Passes the URL shape check but carries no 11-character video ID.
	view, err := svc.Convert(context.Background(), "sess", &services.Submission{
		VideoURL: "https://www.youtube.com/feed",
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if view.FileName != "youtube_video.md" {
		t.Errorf("view.FileName = %q, want youtube_video.md", view.FileName)
	}
}

func TestDownloadServesFullContent(t *testing.T) {
	long := strings.Repeat("word ", 1000) // 5000 chars
	conv := &fakeConverter{markdown: long}
	svc := newTestService(t, conv)

	if _, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "big.docx",
		File:     strings.NewReader("bytes"),
	}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	view, err := svc.Result("sess")
	if err != nil {
		t.Fatalf("Result() unexpected error: %v", err)
	}
	if !view.Truncated {
		t.Error("Result().Truncated = false for 5000-char content")
	}
	if !strings.HasSuffix(view.Preview, previewNotice) {
		t.Error("Result().Preview missing the truncation notice")
	}

	full, err := svc.Download("sess")
	if err != nil {
		t.Fatalf("Download() unexpected error: %v", err)
	}
	if full.Markdown != long {
		t.Error("Download().Markdown differs from the converted content")
	}
}

func TestClearDropsResult(t *testing.T) {
	conv := &fakeConverter{markdown: "# x"}
	svc := newTestService(t, conv)

	if _, err := svc.Convert(context.Background(), "sess", &services.Submission{
		Filename: "a.docx",
		File:     strings.NewReader("bytes"),
	}); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	svc.Clear("sess")

	if _, err := svc.Result("sess"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Result() after Clear() = %v, want not-found", err)
	}
}

func TestPreviewOf(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantTruncated bool
		wantPreview   string
	}{
		{
			name:          "short content unchanged",
			content:       "# small doc",
			wantTruncated: false,
			wantPreview:   "# small doc",
		},
		{
			name:          "exactly at the limit",
			content:       strings.Repeat("a", config.PreviewCharLimit),
			wantTruncated: false,
			wantPreview:   strings.Repeat("a", config.PreviewCharLimit),
		},
		{
			name:          "one past the limit",
			content:       strings.Repeat("a", config.PreviewCharLimit+1),
			wantTruncated: true,
			wantPreview:   strings.Repeat("a", config.PreviewCharLimit) + previewNotice,
		},
		{
			name:          "multi-byte runes counted as characters",
			content:       strings.Repeat("世", config.PreviewCharLimit+500),
			wantTruncated: true,
			wantPreview:   strings.Repeat("世", config.PreviewCharLimit) + previewNotice,
		},
		{
			name:          "empty content",
			content:       "",
			wantTruncated: false,
			wantPreview:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := previewOf(tt.content)
			if truncated != tt.wantTruncated {
				t.Errorf("previewOf() truncated = %v, want %v", truncated, tt.wantTruncated)
			}
			if got != tt.wantPreview {
				t.Errorf("previewOf() = %q..., want %q...", head(got), head(tt.wantPreview))
			}
		})
	}
}

func head(s string) string {
	if len(s) > 40 {
		return s[:40]
	}
	return s
}

func TestMarkdownFileName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"docx upload", "report.docx", "report.md"},
		{"multi-dot name", "archive.tar.gz", "archive.tar.md"},
		{"uppercase extension", "SLIDES.PPTX", "SLIDES.md"},
		{"no extension", "README", "README.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := markdownFileName(tt.filename); got != tt.want {
				t.Errorf("markdownFileName(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

package engine

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv/v2"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/NIACK18/office-to-markdown-app/internal/engine/sanitizer"
)

const (
	// maxFetchBytes bounds how much of a remote page the engine reads.
	maxFetchBytes = 10 << 20

	// maxArchiveEntryBytes guards against archive entries that balloon
	// far past the upload size when decompressed.
	maxArchiveEntryBytes = 50 << 20
)

// NativeEngine converts in-process using Go conversion libraries. Coverage
// is narrower than the CLI: formats no linked library can handle return an
// ordinary conversion error.
//
// HTML (uploaded or fetched) goes through two stages:
// 1. Sanitize (strip scripts, event handlers, javascript: URLs)
// 2. Convert the sanitized tree to Markdown
type NativeEngine struct {
	sanitizer *sanitizer.HTMLSanitizer
	client    *http.Client
}

// NewNativeEngine creates the in-process engine.
func NewNativeEngine() *NativeEngine {
	return &NativeEngine{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the engine name for logging.
func (e *NativeEngine) Name() string {
	return "native"
}

// ConvertFile converts a file on disk to Markdown, selecting the strategy
// by extension.
func (e *NativeEngine) ConvertFile(ctx context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return e.convertArchive(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return e.convertBytes(filepath.Base(path), data)
}

// ConvertURL fetches the page behind the URL, promotes its <title> to a
// heading and converts the sanitized body to Markdown. For video URLs this
// yields the page metadata, not a transcript.
func (e *NativeEngine) ConvertURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	markdown, err := e.htmlToMarkdown(string(body))
	if err != nil {
		return "", err
	}

	if title != "" {
		return "# " + title + "\n\n" + markdown, nil
	}
	return markdown, nil
}

// convertBytes picks the conversion strategy from the filename extension.
func (e *NativeEngine) convertBytes(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".html", ".htm":
		return e.htmlToMarkdown(string(data))

	case ".txt", ".md", ".csv", ".json":
		// Already text; passes through unchanged
		return string(data), nil

	case ".docx", ".doc", ".pdf", ".pptx", ".odt", ".rtf", ".xml":
		res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(name), true)
		if err != nil {
			return "", fmt.Errorf("extract %s content: %w", ext, err)
		}
		return res.Body, nil

	default:
		return "", fmt.Errorf("the native engine cannot convert %s files; use the markitdown engine", ext)
	}
}

// convertArchive converts every supported entry in a zip archive and joins
// the pieces under per-entry headings. Entries the engine cannot read or
// convert are skipped, not fatal; an archive with nothing convertible
// errors.
func (e *NativeEngine) convertArchive(ctx context.Context, path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer archive.Close()

	var sections []string
	for _, entry := range archive.File {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(io.LimitReader(rc, maxArchiveEntryBytes))
		rc.Close()
		if err != nil {
			continue
		}

		markdown, err := e.convertBytes(entry.Name, data)
		if err != nil {
			continue
		}
		sections = append(sections, "## "+entry.Name+"\n\n"+markdown)
	}

	if len(sections) == 0 {
		return "", fmt.Errorf("archive has no convertible entries")
	}
	return strings.Join(sections, "\n\n"), nil
}

// htmlToMarkdown sanitizes untrusted HTML and converts it to Markdown.
func (e *NativeEngine) htmlToMarkdown(html string) (string, error) {
	sanitized, err := e.sanitizer.Sanitize(html)
	if err != nil {
		return "", fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return markdown, nil
}

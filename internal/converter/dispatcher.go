// Package converter dispatches conversion requests to the configured engine
// and owns the scratch-file lifecycle for uploads.
package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NIACK18/office-to-markdown-app/internal/domain"
	"github.com/NIACK18/office-to-markdown-app/internal/engine"
)

// Dispatcher hands sources to the engine. Upload payloads are spooled to a
// scratch file first because engines select their strategy by extension.
type Dispatcher struct {
	engine     engine.Engine
	scratchDir string        // Empty means the system temp dir
	timeout    time.Duration // 0 means no deadline
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher bound to one engine.
func NewDispatcher(eng engine.Engine, scratchDir string, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		engine:     eng,
		scratchDir: scratchDir,
		timeout:    timeout,
		logger:     logger,
	}
}

// Engine returns the name of the engine behind this dispatcher.
func (d *Dispatcher) Engine() string {
	return d.engine.Name()
}

// ConvertUpload spools the payload to a scratch file carrying the upload's
// extension, converts it, and removes the scratch file on every exit path.
// Engine failures come back as a conversion domain error, never as a fault.
func (d *Dispatcher) ConvertUpload(ctx context.Context, filename string, payload io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	tmp, err := os.CreateTemp(d.scratchDir, "office2md-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	scratchPath := tmp.Name()
	defer d.removeScratch(scratchPath)

	if _, err := io.Copy(tmp, payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	ctx, cancel := d.convertContext(ctx)
	defer cancel()

	markdown, err := d.engine.ConvertFile(ctx, scratchPath)
	if err != nil {
		d.logger.Warn("file conversion failed",
			"filename", filename,
			"engine", d.engine.Name(),
			"error", err,
		)
		return "", &domain.ConversionError{Message: err.Error(), Engine: d.engine.Name()}
	}

	return markdown, nil
}

// ConvertVideoURL converts a video URL; no scratch file is involved.
func (d *Dispatcher) ConvertVideoURL(ctx context.Context, url string) (string, error) {
	ctx, cancel := d.convertContext(ctx)
	defer cancel()

	markdown, err := d.engine.ConvertURL(ctx, url)
	if err != nil {
		d.logger.Warn("url conversion failed",
			"url", url,
			"engine", d.engine.Name(),
			"error", err,
		)
		return "", &domain.ConversionError{Message: err.Error(), Engine: d.engine.Name()}
	}

	return markdown, nil
}

// convertContext applies the configured conversion deadline, if any.
func (d *Dispatcher) convertContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout > 0 {
		return context.WithTimeout(ctx, d.timeout)
	}
	return context.WithCancel(ctx)
}

// removeScratch deletes a scratch file. Failure is logged and swallowed; a
// leftover temp file must never fail a conversion that already succeeded.
func (d *Dispatcher) removeScratch(path string) {
	if err := os.Remove(path); err != nil {
		d.logger.Warn("failed to remove scratch file",
			"path", path,
			"error", err,
		)
	}
}

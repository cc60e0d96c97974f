package engine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MarkitdownEngine shells out to the MarkItDown CLI. The binary accepts a
// file path or a URL as its single argument and writes Markdown to stdout;
// anything on stderr becomes the error message.
type MarkitdownEngine struct {
	binaryPath string
}

// NewMarkitdownEngine locates the markitdown binary. An explicit path wins;
// otherwise PATH is searched.
func NewMarkitdownEngine(binaryPath string) (*MarkitdownEngine, error) {
	if binaryPath == "" {
		path, err := exec.LookPath("markitdown")
		if err != nil {
			return nil, fmt.Errorf("markitdown binary not found in PATH (install with: pip install markitdown)")
		}
		binaryPath = path
	}
	return &MarkitdownEngine{binaryPath: binaryPath}, nil
}

// Name returns the engine name for logging.
func (e *MarkitdownEngine) Name() string {
	return "markitdown"
}

// ConvertFile converts a file on disk to Markdown.
func (e *MarkitdownEngine) ConvertFile(ctx context.Context, path string) (string, error) {
	return e.run(ctx, path)
}

// ConvertURL converts a video URL to Markdown (transcript plus metadata,
// as produced by the CLI).
func (e *MarkitdownEngine) ConvertURL(ctx context.Context, url string) (string, error) {
	return e.run(ctx, url)
}

// run executes the binary with a single source argument.
func (e *MarkitdownEngine) run(ctx context.Context, source string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binaryPath, source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("conversion timed out: %w", ctx.Err())
		}

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("markitdown: %s", msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

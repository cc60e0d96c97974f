package main

// One-shot command-line converter. Runs the same engine/dispatcher pipeline
// as the server, without the server:
//
//	go run scripts/convert_cli.go report.docx > report.md
//	go run scripts/convert_cli.go https://youtu.be/dQw4w9WgXcQ
//	go run scripts/convert_cli.go -engine native page.html
//
// Markdown goes to stdout, status lines to stderr.

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/NIACK18/office-to-markdown-app/internal/config"
	"github.com/NIACK18/office-to-markdown-app/internal/converter"
	"github.com/NIACK18/office-to-markdown-app/internal/engine"
	"github.com/NIACK18/office-to-markdown-app/internal/service"
	"github.com/NIACK18/office-to-markdown-app/internal/youtube"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

func main() {
	_ = godotenv.Load()

	engineName := flag.String("engine", "", "engine override (markitdown|native)")
	timeout := flag.Duration("timeout", 2*time.Minute, "conversion deadline")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: convert_cli [-engine name] [-timeout 2m] <file-or-youtube-url>")
		os.Exit(2)
	}
	source := flag.Arg(0)

	cfg := config.Load()
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	eng, err := engine.NewFactory(cfg).GetEngine(cfg.Engine)
	if err != nil {
		fail("engine setup failed", err)
	}
	dispatcher := converter.NewDispatcher(eng, cfg.ScratchDir, *timeout, logger)

	start := time.Now()
	ctx := context.Background()

	var markdown string
	if youtube.IsVideoURL(source) {
		markdown, err = dispatcher.ConvertVideoURL(ctx, source)
	} else {
		var f *os.File
		f, err = os.Open(source)
		if err != nil {
			fail("cannot open input", err)
		}
		markdown, err = dispatcher.ConvertUpload(ctx, filepath.Base(source), f)
		_ = f.Close()
	}
	if err != nil {
		fail("conversion failed", err)
	}

	fmt.Println(markdown)

	words := service.NewContentAnalyzer().CountWords(markdown)
	fmt.Fprintf(os.Stderr, "%s✓ converted with %s in %s (%d words)%s\n",
		colorGreen, eng.Name(), time.Since(start).Round(time.Millisecond), words, colorReset)
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s✗ %s: %v%s\n", colorRed, msg, err, colorReset)
	os.Exit(1)
}

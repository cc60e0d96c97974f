package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/NIACK18/office-to-markdown-app/internal/catalog"
	"github.com/NIACK18/office-to-markdown-app/internal/config"
	"github.com/NIACK18/office-to-markdown-app/internal/converter"
	"github.com/NIACK18/office-to-markdown-app/internal/engine"
	"github.com/NIACK18/office-to-markdown-app/internal/handler"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
	"github.com/NIACK18/office-to-markdown-app/internal/middleware"
	"github.com/NIACK18/office-to-markdown-app/internal/service"
	"github.com/NIACK18/office-to-markdown-app/internal/session"
	"github.com/NIACK18/office-to-markdown-app/internal/web"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, config.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"engine", cfg.Engine,
	)

	// Load the supported-format catalog
	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("Failed to load format catalog: %v", err)
	}

	// Select the conversion engine
	eng, err := engine.NewFactory(cfg).GetEngine(cfg.Engine)
	if err != nil {
		log.Fatalf("Failed to create conversion engine: %v", err)
	}
	logger.Info("conversion engine ready", "engine", eng.Name())

	// Wire the conversion pipeline
	dispatcher := converter.NewDispatcher(eng, cfg.ScratchDir, cfg.ConvertTimeout, logger)
	store := session.NewStore(cfg.SessionTTL)
	contentAnalyzer := service.NewContentAnalyzer()
	conversionService := service.NewConversionService(dispatcher, store, cat, contentAnalyzer, logger)

	// Create handlers
	convertHandler := handler.NewConvertHandler(conversionService, logger)
	resultHandler := handler.NewResultHandler(conversionService, logger)
	formatsHandler := handler.NewFormatsHandler(cat)

	// Embedded single-page UI
	pageHandler, err := web.Handler()
	if err != nil {
		log.Fatalf("Failed to load embedded page: %v", err)
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Single-page UI at the root path only
	mux.Handle("GET /{$}", pageHandler)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	// Conversion routes
	mux.HandleFunc("GET /api/formats", formatsHandler.Get)
	mux.HandleFunc("POST /api/convert", convertHandler.Convert)
	mux.HandleFunc("GET /api/result", resultHandler.Get)
	mux.HandleFunc("GET /api/result/download", resultHandler.Download)
	mux.HandleFunc("DELETE /api/result", resultHandler.Clear)

	// Debug routes (only in dev environment)
	if cfg.Environment == "dev" && cfg.Debug {
		debugHandler := handler.NewDebugHandler(store)
		mux.HandleFunc("GET /debug/api/result", debugHandler.RawResult)
		logger.Warn("Debug route registered: GET /debug/api/result (full stored result, bypasses the preview)")
	}

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Session → Routes
	root = middleware.Session(cfg.Environment == "prod")(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-running conversions
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

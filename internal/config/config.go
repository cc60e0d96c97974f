package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Conversion engine configuration
	Engine         string        // "markitdown" (external CLI) or "native" (in-process)
	MarkitdownPath string        // Explicit binary path; empty means resolve from PATH
	ScratchDir     string        // Where uploads are spooled; empty means os.TempDir
	ConvertTimeout time.Duration // Per-conversion deadline; 0 disables the deadline
	// Result retention
	SessionTTL time.Duration
	// Logging
	LogDir string // When set, mirror logs into timestamped files under this directory
	// Debug flags
	Debug bool // Enables DEBUG features like the raw-result debug endpoint
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		Engine:         getEnv("CONVERTER_ENGINE", "markitdown"),
		MarkitdownPath: getEnv("MARKITDOWN_PATH", ""),
		ScratchDir:     getEnv("SCRATCH_DIR", ""),
		ConvertTimeout: getDurationEnv("CONVERT_TIMEOUT", 0),
		SessionTTL:     getDurationEnv("SESSION_TTL", time.Hour),
		LogDir:         getEnv("LOG_DIR", ""),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true" // Enable DEBUG in dev/test by default
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv parses a Go duration string like "30s" or "2m".
// Missing or unparseable values fall back to the default.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

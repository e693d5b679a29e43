// Package config loads environment-backed settings and initializes the
// process logger.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string
	LogLevel    string

	Screening ScreeningConfig
}

// ScreeningConfig holds screening thresholds.
type ScreeningConfig struct {
	MarginFactor   float64
	WindowLength   int
	FlatThreshold  float64
	CountThreshold int
}

// Load reads configuration from the environment, preferring a .env file
// when one exists. DATABASE_URL is the only required setting.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return &Config{
		DatabaseURL: databaseURL,
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		Screening: ScreeningConfig{
			MarginFactor:   getEnvFloat("SCREENING_MARGIN_FACTOR", 3),
			WindowLength:   getEnvInt("SCREENING_WINDOW_LENGTH", 2),
			FlatThreshold:  getEnvFloat("SCREENING_FLAT_THRESHOLD", 0.02),
			CountThreshold: getEnvInt("SCREENING_COUNT_THRESHOLD", 2),
		},
	}, nil
}

// NewLogger builds the process-wide structured logger and installs it as
// the slog default.
func NewLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const appName = "sugr"

// Config holds application configuration.
type Config struct {
	// Storage
	DBPath string

	// Logging
	LogLevel string
	LogFile  string

	// Day boundaries
	TimeZone string

	// Export
	ExportDir string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dir := defaultDataDir()
	cfg := &Config{
		DBPath:    getEnv("SUGR_DB_PATH", filepath.Join(dir, appName+".db")),
		LogLevel:  getEnv("SUGR_LOG_LEVEL", "info"),
		LogFile:   getEnv("SUGR_LOG_FILE", filepath.Join(dir, appName+".log")),
		TimeZone:  getEnv("SUGR_TZ", ""),
		ExportDir: getEnv("SUGR_EXPORT_DIR", defaultExportDir()),
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the zone that decides day boundaries. An empty TimeZone
// means the system local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultDataDir() string {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(cfg, appName)
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

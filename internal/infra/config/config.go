package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// anchorDateLayout is the expected format of SHIFT_ANCHOR_DATE.
const anchorDateLayout = "2006-01-02"

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL          string
	ListenAddr           string
	ShiftAnchorDate      time.Time // date marking shift cycle position 0
	SessionLifetime      time.Duration
	CronSpecSessionPurge string
	TelegramToken        string // optional; empty disables mur push notifications
	LogLevel             string
	Environment          string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.ListenAddr = os.Getenv("LISTEN_ADDR")
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	anchorStr := os.Getenv("SHIFT_ANCHOR_DATE")
	if anchorStr == "" {
		anchorStr = "2025-03-17" // first work day of the reference cycle
	}
	cfg.ShiftAnchorDate, err = time.Parse(anchorDateLayout, anchorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_ANCHOR_DATE %q (want YYYY-MM-DD): %w", anchorStr, err)
	}

	lifetimeDaysStr := os.Getenv("SESSION_LIFETIME_DAYS")
	if lifetimeDaysStr == "" {
		lifetimeDaysStr = "31"
	}
	lifetimeDays, err := strconv.Atoi(lifetimeDaysStr)
	if err != nil || lifetimeDays <= 0 {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME_DAYS %q: must be a positive integer", lifetimeDaysStr)
	}
	cfg.SessionLifetime = time.Duration(lifetimeDays) * 24 * time.Hour

	cfg.CronSpecSessionPurge = os.Getenv("CRON_SPEC_SESSION_PURGE")
	if cfg.CronSpecSessionPurge == "" {
		cfg.CronSpecSessionPurge = "0 3 * * *" // Default: 3:00 AM daily
	}

	// Optional: when unset the Telegram notifier is disabled entirely.
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

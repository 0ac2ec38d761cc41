package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shift_calendar_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), cfg.ShiftAnchorDate)
	assert.Equal(t, 31*24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, "0 3 * * *", cfg.CronSpecSessionPurge)
	assert.Empty(t, cfg.TelegramToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shift_calendar_test")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SHIFT_ANCHOR_DATE", "2024-01-05")
	t.Setenv("SESSION_LIFETIME_DAYS", "7")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), cfg.ShiftAnchorDate)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shift_calendar_test")

	t.Setenv("SHIFT_ANCHOR_DATE", "17.03.2025")
	_, err := Load()
	assert.Error(t, err)
	t.Setenv("SHIFT_ANCHOR_DATE", "")

	t.Setenv("SESSION_LIFETIME_DAYS", "-3")
	_, err = Load()
	assert.Error(t, err)
}

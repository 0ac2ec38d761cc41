// internal/infra/logger/logger.go
package logger

import (
	"os"
	"time"

	"shift_calendar_app/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Components derive their own entries
// from it via WithField("component", ...).
var Log = logrus.New()

// Init applies the configured level and output format. Production and
// staging emit JSON lines; any other environment gets colored text for
// local reading. config.Load has already lowercased both values.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		Log.Warnf("Unknown log level %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	switch cfg.Environment {
	case "production", "staging":
		Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	Log.Debugf("Logger ready: level=%s environment=%s", Log.GetLevel(), cfg.Environment)
}

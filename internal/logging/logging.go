// Package logging configures the zerolog root logger with a configurable
// level and JSON or console output.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"alertrelay/internal/config"
)

// New builds the root logger from the logging configuration. Unknown levels
// fall back to info, unknown formats to JSON.
func New(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "console", "text":
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	default:
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "alertrelay").
		Logger()
}

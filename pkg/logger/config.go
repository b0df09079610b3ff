package logger

import "log/slog"

// Config holds logger configuration.
type Config struct {
	// Level is parsed from slog level text ("debug", "info", "warn", "error").
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Sentry SentryConfig
}

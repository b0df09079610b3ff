package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout.
// When cfg.Sentry.DSN is set, records are also sent to Sentry.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	if cfg.Sentry.DSN != "" {
		return NewWithSentry(cfg.Sentry, cfg.Level, extractors...)
	}
	return NewWithWriter(os.Stdout, cfg.Level, extractors...)
}

// NewWithWriter creates a JSON-formatted logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewContextHandler(jsonHandler(w, level), extractors...))
}

// NewNope returns a logger that drops every record. Components use it
// when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Package logger provides structured logging with context extraction and Sentry integration.
//
// Loggers are log/slog JSON loggers wrapped in a ContextHandler, which
// asks every ContextExtractor for an attribute on each call. Request-scoped
// values such as the request ID therefore appear on every record written with
// a request context, without threading them through call sites.
//
// # Basic Usage
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo}, requestID)
//	log.InfoContext(ctx, "enquiry accepted", slog.String("service", "Deep Clean"))
//
// # Sentry Integration
//
// When Config.Sentry.DSN is set, records are teed to Sentry: errors create
// Issues, records at or above SentryConfig.MinLevel are stored as logs. An
// empty DSN or a failed initialisation falls back to stdout only.
//
// Register FlushSentry as a shutdown hook so buffered events are delivered
// before the process exits:
//
//	internal.ShutdownHook(logger.FlushSentry(2 * time.Second))
//
// # Testing
//
// NewNope discards everything. NewWithWriter writes JSON to any io.Writer,
// which makes log output assertable from tests.
package logger

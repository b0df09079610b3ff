package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/enquiry/internal"
)

// AccessLog returns middleware that logs one line per request once the
// handler chain has finished. Install it after RequestID so the line
// carries the request ID, and before Recover so it sees the final status.
// Errors still pending when the chain returns are logged as 500 and
// passed on to the ErrorHandler.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Status()
			if err != nil && !c.Written() {
				status = http.StatusInternalServerError
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			req := c.Request()
			c.Logger().Log(c.Context(), level, "http request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", req.RemoteAddr),
			)

			return err
		}
	}
}

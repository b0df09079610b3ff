package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/enquiry/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds request handling time.
// A zero or negative d uses DefaultTimeout.
//
// Handlers must pass GetTimeoutContext(c) to blocking calls. When the
// deadline passes, the middleware waits for the handler to return so the
// response is written at most once. If the handler wrote nothing, a
// TimeoutError is returned to the app's ErrorHandler.
//
// The handler runs on its own goroutine, out of reach of an outer Recover,
// so a panic there is converted to a PanicError here.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()

			c.Set(timeoutContextKey{}, ctx)

			done := make(chan error, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						done <- newPanicError(r, DefaultStackSize)
					}
				}()
				done <- next(c)
			}()

			var err error
			select {
			case err = <-done:
				return err
			case <-ctx.Done():
				err = <-done
			}

			if c.Written() || IsPanicError(err) || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return err
			}
			return &TimeoutError{Duration: d}
		}
	}
}

// timeoutContextKey is used to store the timeout context.
type timeoutContextKey struct{}

// GetTimeoutContext returns the deadline-bound context set by Timeout,
// or the request context when Timeout is not installed.
func GetTimeoutContext(c internal.Context) context.Context {
	if v, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return v
	}
	return c.Context()
}

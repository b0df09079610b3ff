package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/enquiry/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize    int  // Max stack trace size (default: 4096)
	DisableStack bool // Do not capture a stack trace
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisableStack disables stack capture.
func WithRecoverDisableStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisableStack = true
	}
}

// Recover returns middleware that converts panics into a PanicError.
// It does not log or write a response: the app's ErrorHandler owns both,
// so a panic is reported exactly once.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					size := cfg.StackSize
					if cfg.DisableStack {
						size = 0
					}
					err = newPanicError(r, size)
				}
			}()

			return next(c)
		}
	}
}

// newPanicError captures up to size bytes of the current goroutine's stack.
// A zero size records no stack.
func newPanicError(v any, size int) *PanicError {
	var stack []byte
	if size > 0 {
		stack = make([]byte, size)
		stack = stack[:runtime.Stack(stack, false)]
	}
	return &PanicError{Value: v, Stack: stack}
}

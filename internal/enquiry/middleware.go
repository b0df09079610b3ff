package enquiry

import (
	"time"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/middlewares"
)

// Middlewares returns the global middleware chain for the enquiry app,
// outermost first. Timeout runs the handler on its own goroutine and
// recovers panics there itself.
func Middlewares(allowOrigins []string, timeout time.Duration) []internal.Middleware {
	return []internal.Middleware{
		middlewares.RequestID(),
		middlewares.AccessLog(),
		middlewares.Recover(),
		middlewares.CORS(middlewares.WithAllowOrigins(allowOrigins...)),
		middlewares.Timeout(timeout),
	}
}

// Package middlewares provides the HTTP middleware the service installs
// globally.
//
// Recommended order:
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(),
//	    middlewares.Recover(),
//	    middlewares.CORS(middlewares.WithAllowOrigins(origins...)),
//	    middlewares.Timeout(cfg.RequestTimeout),
//	)
//
// RequestID keeps an upstream X-Request-ID or generates a UUIDv7. Pair it
// with RequestIDExtractor so every log line carries the ID.
//
// Recover and Timeout never write responses. They return *PanicError and
// *TimeoutError for the app's ErrorHandler, which logs and renders them once.
// Handlers should use GetTimeoutContext for blocking calls so the deadline
// cancels them.
//
// CORS answers browser preflight requests for cross-origin form posts.
//
// AccessLog writes one record per request with method, path, status and
// duration.
package middlewares

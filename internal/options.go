package internal

import "log/slog"

// Option configures an App.
type Option func(*App)

// WithMiddleware appends global middleware. The first one given is the
// outermost and sees every request, including 404s and health probes.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) { a.middlewares = append(a.middlewares, mw...) }
}

// WithHandlers registers handlers whose Routes are called once by New.
func WithHandlers(h ...Handler) Option {
	return func(a *App) { a.handlers = append(a.handlers, h...) }
}

// WithErrorHandler sets the handler for errors returned by routes and
// middleware. It is skipped when a response is already written.
// Without one, errors become a plain-text 500.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) { a.errorHandler = h }
}

// WithNotFoundHandler answers requests that match no route. An error it
// returns goes through the ErrorHandler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) { a.notFoundHandler = h }
}

// WithMethodNotAllowedHandler answers requests whose path exists but
// not for that method.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) { a.methodNotAllowedHandler = h }
}

// WithHealthChecks mounts liveness and readiness probes, by default at
// /health/live and /health/ready.
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger sets the logger behind Context.Logger and the readiness
// probe. Nil keeps the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

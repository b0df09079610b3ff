// Package internal provides the HTTP kernel the service is built on.
//
// An App wraps a chi router. Handlers implement Handler and declare routes on
// a Router; route functions have the HandlerFunc signature and return an
// error instead of writing failures themselves. Errors go to the app's
// ErrorHandler unless a response has already been written.
//
// Context embeds context.Context, so it can be passed straight to blocking
// calls:
//
//	func (h *EnquiryHandler) submit(c internal.Context) error {
//	    env, status := h.svc.Submit(c, req)
//	    return c.JSON(status, env)
//	}
//
// Middleware uses the same Context and is adapted to chi middleware. Values
// stored with Context.Set in a middleware are visible to everything after it.
//
// App.Run runs startup hooks, starts listening, and blocks until SIGINT, SIGTERM or
// cancellation of the WithContext base context. It then drains the server and
// runs shutdown hooks within ShutdownTimeout.
package internal

package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is what a Handler sees when declaring routes. Route middleware
// runs inside the global middleware, first argument outermost.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
}

type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Method(http.MethodGet, path, r.chain(h, mw))
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Method(http.MethodPost, path, r.chain(h, mw))
}

func (r *routerAdapter) chain(h HandlerFunc, mw []Middleware) http.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return r.app.wrapHandler(h)
}

// adaptMiddleware runs a global Middleware as chi middleware. The request
// left on the Context is the one passed on, so values stored with Set
// reach the route. An error the middleware returns itself, such as a
// PanicError or TimeoutError, goes to the ErrorHandler here.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.handleError(c, err)
			}
		})
	}
}

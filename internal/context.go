package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Context is the per-request view handed to handlers and middleware.
// It is a context.Context backed by the request's context, so it can be
// passed straight to blocking calls.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter

	// Context returns the request's context.Context, including values
	// stored with Set.
	Context() context.Context

	// Header returns a request header.
	Header(name string) string
	// SetHeader sets a response header. It has no effect once written.
	SetHeader(name, value string)

	// JSON encodes v before writing anything, so an encoding failure
	// leaves the response untouched for the ErrorHandler.
	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error

	// Written reports whether a status line has been sent.
	Written() bool
	// Status is the status sent so far, 200 if none.
	Status() int

	Logger() *slog.Logger
	// LogError logs at error level with the request context, so context
	// extractors such as the request ID apply.
	LogError(msg string, attrs ...any)

	// Set stores a request-scoped value visible to later middleware,
	// the handler and c.Context().
	Set(key, value any)
	Get(key any) any
}

type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	logger   *slog.Logger
}

// newContext reuses w when it is already a *ResponseWriter, so every
// middleware layer sees the same write state.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}
	return &requestContext{request: r, response: rw, logger: app.logger}
}

func (c *requestContext) Request() *http.Request        { return c.request }
func (c *requestContext) Response() http.ResponseWriter { return c.response }
func (c *requestContext) Context() context.Context      { return c.request.Context() }

func (c *requestContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *requestContext) Err() error                  { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *requestContext) Header(name string) string { return c.request.Header.Get(name) }

func (c *requestContext) SetHeader(name, value string) {
	if !c.response.Written() {
		c.response.Header().Set(name, value)
	}
}

func (c *requestContext) JSON(code int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	_, err = c.response.Write(append(body, '\n'))
	return err
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Written() bool { return c.response.Written() }
func (c *requestContext) Status() int   { return c.response.Status() }

func (c *requestContext) Logger() *slog.Logger { return c.logger }

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any { return c.request.Context().Value(key) }

package enquiry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/middlewares"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes = 64 << 10

var (
	errNullBody     = errors.New("enquiry: request body is null")
	errTrailingData = errors.New("enquiry: unexpected data after JSON body")
)

// Submitter is the behaviour the HTTP handler needs from Service.
type Submitter interface {
	Submit(ctx context.Context, req Request) (Envelope, int)
}

// Handler exposes the enquiry endpoint.
type Handler struct {
	svc     Submitter
	path    string
	maxBody int64
}

// NewHandler creates the HTTP handler for svc.
func NewHandler(svc Submitter, cfg Config) *Handler {
	h := &Handler{svc: svc, path: cfg.Path, maxBody: cfg.MaxBodyBytes}
	if h.path == "" {
		h.path = "/api/enquiry"
	}
	if h.maxBody <= 0 {
		h.maxBody = DefaultMaxBodyBytes
	}
	return h
}

// Routes implements internal.Handler. Only POST is registered, so other
// methods on the path reach the method-not-allowed handler.
func (h *Handler) Routes(r internal.Router) {
	r.POST(h.path, h.submit)
}

func (h *Handler) submit(c internal.Context) error {
	req, err := decodeRequest(c.Response(), c.Request(), h.maxBody)
	if err != nil {
		return &UnexpectedError{Err: err}
	}

	ctx := middlewares.GetTimeoutContext(c)
	env, status := h.svc.Submit(ctx, req)

	// A request timeout is a fault, not a delivery failure. A delivered
	// enquiry is reported as delivered even if the deadline passed since.
	if status != http.StatusOK && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &UnexpectedError{Err: ctx.Err()}
	}

	return c.JSON(status, env)
}

// decodeRequest reads exactly one JSON object from the body.
func decodeRequest(w http.ResponseWriter, r *http.Request, limit int64) (Request, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))

	var req *Request
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("enquiry: decode body: %w", err)
	}
	if req == nil {
		return Request{}, errNullBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Request{}, errTrailingData
	}

	return *req, nil
}

// HandleError is the app-wide ErrorHandler. Every error becomes an
// Envelope; anything that is not a client error is logged here, once.
func HandleError(c internal.Context, err error) error {
	env, status := envelopeFor(err)
	if status >= http.StatusInternalServerError {
		attrs := []any{slog.Any("error", err), slog.String("path", c.Request().URL.Path)}
		if pe, ok := middlewares.AsPanicError(err); ok && len(pe.Stack) > 0 {
			attrs = append(attrs, slog.String("stack", string(pe.Stack)))
		}
		c.LogError("request failed", attrs...)
	}
	return c.JSON(status, env)
}

// NotFound answers unknown paths with an error envelope.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound(MsgNotFound)
}

// MethodNotAllowed answers unsupported methods with an error envelope.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed(MsgMethodNotAllowed)
}

// envelopeFor maps an error to its client envelope and status.
// Only validation messages and explicit 4xx HTTP errors reach the client verbatim.
func envelopeFor(err error) (Envelope, int) {
	var (
		verr *ValidationError
		derr *DeliveryError
	)
	switch {
	case errors.As(err, &verr):
		return Failure(verr.Message), verr.StatusCode()
	case errors.As(err, &derr):
		return Failure(MsgDeliveryFailed), derr.StatusCode()
	}

	if httpErr := internal.AsHTTPError(err); httpErr != nil && httpErr.Code < http.StatusInternalServerError {
		return Failure(httpErr.Message), httpErr.Code
	}

	return Failure(MsgUnexpected), http.StatusInternalServerError
}

package internal

// Handler declares routes on a router.
//
// Example:
//
//	type EnquiryHandler struct {
//	    svc *enquiry.Service
//	}
//
//	func (h *EnquiryHandler) Routes(r internal.Router) {
//	    r.POST("/api/enquiry", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error

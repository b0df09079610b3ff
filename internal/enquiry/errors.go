package enquiry

import (
	"fmt"
	"net/http"
)

// Client-facing messages. These are part of the public contract.
const (
	MsgMissingFields    = "Missing required fields: firstName, lastName, email, and service are required."
	MsgInvalidEmail     = "Invalid email address."
	MsgDeliveryFailed   = "Failed to send email. Please try again later."
	MsgUnexpected       = "An unexpected error occurred."
	MsgNotFound         = "Not found."
	MsgMethodNotAllowed = "Method not allowed."
)

// ValidationError rejects a request before any side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StatusCode returns 400.
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// DeliveryError reports a failed gateway call. The cause is for logs only.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("enquiry: delivery failed: %v", e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }

// StatusCode returns 500.
func (e *DeliveryError) StatusCode() int { return http.StatusInternalServerError }

// UnexpectedError covers every other fault: unreadable bodies, panics, timeouts.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return fmt.Sprintf("enquiry: unexpected: %v", e.Err) }
func (e *UnexpectedError) Unwrap() error { return e.Err }

// StatusCode returns 500.
func (e *UnexpectedError) StatusCode() int { return http.StatusInternalServerError }

package enquiry

// Envelope is the only response body shape the endpoint produces.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Success returns the envelope for a delivered enquiry.
func Success() Envelope {
	return Envelope{OK: true}
}

// Failure returns an error envelope carrying a client-safe message.
func Failure(message string) Envelope {
	return Envelope{Error: message}
}

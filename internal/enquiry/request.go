package enquiry

import "regexp"

// emailPattern is a shape check only: one "@", a dot in the domain part, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Request is an enquiry as submitted by the client. It is untrusted until
// Validate returns nil. Values are used exactly as received.
type Request struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Service   string `json:"service"`
	Address   string `json:"address,omitempty"`
}

// Validate checks required fields first, then the email shape.
// It returns a *ValidationError or nil.
func (r Request) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Service == "" {
		return &ValidationError{Message: MsgMissingFields}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}

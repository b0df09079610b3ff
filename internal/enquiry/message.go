package enquiry

import "strings"

const notProvided = "Not provided"

// Message is the plain-text notification for one enquiry.
type Message struct {
	lines [8]string
}

// NewMessage renders req with the given timestamp text.
// Empty phone or address values render as "Not provided".
func NewMessage(req Request, timestamp string) Message {
	return Message{lines: [8]string{
		"New Enquiry Received",
		"",
		"Timestamp: " + timestamp,
		"Name: " + req.FirstName + " " + req.LastName,
		"Email: " + req.Email,
		"Phone: " + orNotProvided(req.Phone),
		"Service: " + req.Service,
		"Address: " + orNotProvided(req.Address),
	}}
}

// Lines returns a copy of the message lines.
func (m Message) Lines() []string {
	return append([]string(nil), m.lines[:]...)
}

// String joins the lines with "\n", without a trailing newline.
func (m Message) String() string {
	return strings.Join(m.lines[:], "\n")
}

// Subject returns the email subject for an enquiry about service.
func Subject(service string) string {
	return "New enquiry - " + service
}

func orNotProvided(v string) string {
	if v == "" {
		return notProvided
	}
	return v
}

package mailer

import (
	"context"
	"errors"
)

// Mailer checks prepared emails and hands them to a Sender.
type Mailer struct {
	sender Sender
	tags   Tags
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithDefaultTags sets tags added to every email that does not set
// the same tag itself.
func WithDefaultTags(tags Tags) Option {
	return func(m *Mailer) {
		m.tags = tags
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{sender: sender}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates a pre-built email and delivers it through the sender.
// Provider failures are returned joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.Text == "" && email.HTML == "" {
		return ErrNoContent
	}

	if len(m.tags) > 0 {
		merged := make(Tags, len(m.tags)+len(email.Tags))
		for k, v := range m.tags {
			merged[k] = v
		}
		for k, v := range email.Tags {
			merged[k] = v
		}
		out := *email
		out.Tags = merged
		email = &out
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

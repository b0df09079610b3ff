package resend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/enquiry/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
// It is safe for concurrent use; build it once at startup.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
// A zero Timeout leaves the HTTP client without its own deadline,
// so only the caller's context bounds the call.
func New(cfg Config) *Sender {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != nil && cfg.BaseURL.Host != "" {
		client.BaseURL = cfg.BaseURL
	}

	return &Sender{
		client: client,
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if s.config.APIKey == "" {
		return ErrNotConfigured
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Tags) > 0 {
		req.Tags = s.convertTags(email.Tags)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

// Healthcheck reports whether the sender can attempt delivery.
// It does not call the API.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		if s.config.APIKey == "" {
			return ErrNotConfigured
		}
		return nil
	}
}

func (s *Sender) convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

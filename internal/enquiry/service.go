package enquiry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/enquiry/pkg/logger"
	"github.com/dmitrymomot/enquiry/pkg/mailer"
)

// DefaultRecipient receives enquiries when no recipient is configured.
const DefaultRecipient = "ecoexpertservices@gmail.com"

// Service validates enquiries and dispatches them through a mailer.
// It holds no per-request state.
type Service struct {
	mailer    *mailer.Mailer
	stamp     *Timestamper
	logger    *slog.Logger
	recipient string
	from      string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRecipient sets the inbox that receives enquiries.
func WithRecipient(addr string) ServiceOption {
	return func(s *Service) {
		if addr != "" {
			s.recipient = addr
		}
	}
}

// WithFrom sets an explicit From address. When unset, the mailer's
// sender applies its configured default.
func WithFrom(from string) ServiceOption {
	return func(s *Service) {
		s.from = from
	}
}

// WithLogger sets the logger used for delivery outcomes.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. Both m and stamp are required.
func NewService(m *mailer.Mailer, stamp *Timestamper, opts ...ServiceOption) *Service {
	s := &Service{
		mailer:    m,
		stamp:     stamp,
		logger:    logger.NewNope(),
		recipient: DefaultRecipient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates req, sends one notification and reports the outcome as
// an envelope and HTTP status. Validation failures never reach the gateway.
// Gateway errors are logged here and never exposed to the client.
func (s *Service) Submit(ctx context.Context, req Request) (Envelope, int) {
	if err := req.Validate(); err != nil {
		return envelopeFor(err)
	}

	msg := NewMessage(req, s.stamp.Now())

	err := s.mailer.Send(ctx, &mailer.Email{
		From:    s.from,
		To:      []string{s.recipient},
		ReplyTo: req.Email,
		Subject: Subject(req.Service),
		Text:    msg.String(),
	})
	if err != nil {
		derr := &DeliveryError{Err: err}
		// Past the deadline the handler reports the request as faulted and logs it there
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.ErrorContext(ctx, "enquiry delivery failed",
				slog.String("service", req.Service),
				slog.Any("error", derr),
			)
		}
		return envelopeFor(derr)
	}

	s.logger.InfoContext(ctx, "enquiry delivered", slog.String("service", req.Service))
	return Success(), http.StatusOK
}

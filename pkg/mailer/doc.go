// Package mailer provides a provider-neutral email sending interface.
//
// Email delivery is split into two parts:
//
//   - Sender: interface that email providers implement (see package resend)
//   - Mailer: checks a prepared Email and hands it to the Sender
//
// # Usage
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "notifications@example.com",
//		SenderName:  "Example",
//	})
//
//	m := mailer.New(sender, mailer.WithDefaultTags(mailer.SimpleTags("enquiry")))
//
//	err := m.Send(ctx, &mailer.Email{
//		To:      []string{"inbox@example.com"},
//		ReplyTo: "visitor@example.org",
//		Subject: "New enquiry - Deep Clean",
//		Text:    body,
//	})
//
// # Custom Providers
//
// Implement Sender, or wrap a function with SenderFunc:
//
//	m := mailer.New(mailer.SenderFunc(func(ctx context.Context, e *mailer.Email) error {
//		log.Printf("would send %q to %v", e.Subject, e.To)
//		return nil
//	}))
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: Neither text nor HTML body provided
//   - ErrSendFailed: The provider failed; joined with the provider error
package mailer

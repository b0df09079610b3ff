package main

import (
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/dmitrymomot/enquiry/internal"
	"github.com/dmitrymomot/enquiry/internal/config"
	"github.com/dmitrymomot/enquiry/internal/enquiry"
	"github.com/dmitrymomot/enquiry/middlewares"
	"github.com/dmitrymomot/enquiry/pkg/logger"
	"github.com/dmitrymomot/enquiry/pkg/mailer"
	"github.com/dmitrymomot/enquiry/pkg/mailer/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger, middlewares.RequestIDExtractor())

	// Gateway client is built once and shared by every request
	sender := resend.New(cfg.Resend)
	if cfg.Resend.APIKey == "" {
		log.Warn("RESEND_API_KEY is not set, enquiries will fail to deliver")
	}

	stamp, err := enquiry.NewTimestamper(nil, cfg.Enquiry.Timezone, cfg.Enquiry.Locale)
	if err != nil {
		log.Error("invalid enquiry timestamp settings", "error", err)
		os.Exit(1)
	}

	svc := enquiry.NewService(
		mailer.New(sender, mailer.WithDefaultTags(mailer.Tags{"category": "enquiry"})),
		stamp,
		enquiry.WithRecipient(cfg.Enquiry.Recipient),
		enquiry.WithLogger(log),
	)

	app := internal.New(
		internal.WithLogger(log),
		internal.WithMiddleware(enquiry.Middlewares(cfg.CORSAllowedOrigins, cfg.RequestTimeout)...),
		internal.WithHandlers(enquiry.NewHandler(svc, cfg.Enquiry)),
		internal.WithErrorHandler(enquiry.HandleError),
		internal.WithNotFoundHandler(enquiry.NotFound),
		internal.WithMethodNotAllowedHandler(enquiry.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("resend", sender.Healthcheck()),
		),
	)

	if err := app.Run(cfg.Address,
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.ShutdownHook(logger.FlushSentry(2*time.Second)),
	); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}

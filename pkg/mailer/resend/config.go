package resend

import (
	"net/url"
	"time"
)

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	BaseURL     *url.URL      `env:"RESEND_BASE_URL"`
	APIKey      string        `env:"RESEND_API_KEY"`
	SenderEmail string        `env:"RESEND_FROM_EMAIL" envDefault:"notifications@ecoexpertservices.co.uk"`
	SenderName  string        `env:"RESEND_FROM_NAME" envDefault:"Eco Expert Services"`
	Timeout     time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s"`
}

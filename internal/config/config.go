// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/enquiry/internal/enquiry"
	"github.com/dmitrymomot/enquiry/pkg/logger"
	"github.com/dmitrymomot/enquiry/pkg/mailer/resend"
)

// Config is the complete service configuration.
type Config struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"20s"`

	Logger  logger.Config
	Resend  resend.Config
	Enquiry enquiry.Config
}

// Load reads .env files (default ".env") into the process environment
// without overriding variables that are already set, then parses Config.
// Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	return cfg, nil
}

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enquiry/internal/config"
)

// unset clears key for the duration of the test and restores it afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var allKeys = []string{
	"ADDRESS", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "REQUEST_TIMEOUT",
	"LOG_LEVEL", "SENTRY_DSN", "SENTRY_ENVIRONMENT", "SENTRY_MIN_LEVEL",
	"RESEND_API_KEY", "RESEND_BASE_URL", "RESEND_FROM_EMAIL", "RESEND_FROM_NAME", "RESEND_TIMEOUT",
	"ENQUIRY_RECIPIENT", "ENQUIRY_PATH", "ENQUIRY_TIMEZONE", "ENQUIRY_LOCALE", "MAX_BODY_BYTES",
}

func TestLoad_Defaults(t *testing.T) {
	unset(t, allKeys...)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)

	require.Equal(t, slog.LevelInfo, cfg.Logger.Level)
	require.Empty(t, cfg.Logger.Sentry.DSN)
	require.Equal(t, slog.LevelWarn, cfg.Logger.Sentry.MinLevel)

	require.Empty(t, cfg.Resend.APIKey)
	require.Equal(t, "notifications@ecoexpertservices.co.uk", cfg.Resend.SenderEmail)
	require.Equal(t, "Eco Expert Services", cfg.Resend.SenderName)
	require.Equal(t, 10*time.Second, cfg.Resend.Timeout)

	require.Equal(t, "ecoexpertservices@gmail.com", cfg.Enquiry.Recipient)
	require.Equal(t, "/api/enquiry", cfg.Enquiry.Path)
	require.Equal(t, "Europe/London", cfg.Enquiry.Timezone)
	require.Equal(t, "en-GB", cfg.Enquiry.Locale)
	require.Equal(t, int64(65536), cfg.Enquiry.MaxBodyBytes)
}

func TestLoad_Environment(t *testing.T) {
	unset(t, allKeys...)

	t.Setenv("ADDRESS", "127.0.0.1:9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RESEND_BASE_URL", "http://localhost:4010/")
	t.Setenv("RESEND_TIMEOUT", "3s")
	t.Setenv("ENQUIRY_RECIPIENT", "inbox@example.com")
	t.Setenv("MAX_BODY_BYTES", "1024")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Address)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, slog.LevelDebug, cfg.Logger.Level)
	require.Equal(t, "re_test", cfg.Resend.APIKey)
	require.NotNil(t, cfg.Resend.BaseURL)
	require.Equal(t, "localhost:4010", cfg.Resend.BaseURL.Host)
	require.Equal(t, 3*time.Second, cfg.Resend.Timeout)
	require.Equal(t, "inbox@example.com", cfg.Enquiry.Recipient)
	require.Equal(t, int64(1024), cfg.Enquiry.MaxBodyBytes)
}

func TestLoad_DotEnvFile(t *testing.T) {
	unset(t, allKeys...)
	t.Setenv("ENQUIRY_PATH", "/from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"ENQUIRY_RECIPIENT=dotenv@example.com\nENQUIRY_PATH=/from-file\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "dotenv@example.com", cfg.Enquiry.Recipient)
	require.Equal(t, "/from-env", cfg.Enquiry.Path, "process environment wins over .env")
}

func TestLoad_InvalidValue(t *testing.T) {
	unset(t, allKeys...)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "config: parse environment")
}

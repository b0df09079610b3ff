package resend

import "errors"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("resend: api key is not configured")

package enquiry

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/enquiry/pkg/locale"
)

// Timestamper renders "now" for notifications in a fixed zone and locale.
type Timestamper struct {
	clock  locale.Clock
	loc    *time.Location
	format *locale.Format
}

// NewTimestamper resolves the IANA zone name and locale tag once.
// A nil clock uses the system clock.
func NewTimestamper(clock locale.Clock, timezone, tag string) (*Timestamper, error) {
	if clock == nil {
		clock = locale.SystemClock()
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("enquiry: load timezone %q: %w", timezone, err)
	}

	format, err := locale.ForTag(tag)
	if err != nil {
		return nil, fmt.Errorf("enquiry: locale %q: %w", tag, err)
	}

	return &Timestamper{clock: clock, loc: loc, format: format}, nil
}

// Now returns the current time formatted for the notification.
// Each call reads the clock again.
func (t *Timestamper) Now() string {
	return t.format.FormatFull(t.clock.Now().In(t.loc))
}

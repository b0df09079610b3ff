package locale

import "time"

// Format contains date and time layouts for one locale.
// It is immutable after creation and safe for concurrent use.
type Format struct {
	tag            string
	dateFormat     string
	timeFormat     string
	dateTimeFormat string
	fullFormat     string
}

// FormatOption configures a Format during construction.
type FormatOption func(*Format)

// NewFormat creates a new Format with the given options.
// If no options are provided, it defaults to US English layouts.
func NewFormat(opts ...FormatOption) *Format {
	f := &Format{
		tag:            "en-US",
		dateFormat:     "01/02/2006",
		timeFormat:     "3:04 PM",
		dateTimeFormat: "01/02/2006 3:04 PM",
		fullFormat:     "Monday, January 2, 2006 at 3:04 PM",
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithTag sets the BCP 47 tag the format reports.
func WithTag(tag string) FormatOption {
	return func(f *Format) {
		f.tag = tag
	}
}

// WithDateFormat sets the date layout (Go time layout).
func WithDateFormat(layout string) FormatOption {
	return func(f *Format) {
		f.dateFormat = layout
	}
}

// WithTimeFormat sets the time layout (Go time layout).
func WithTimeFormat(layout string) FormatOption {
	return func(f *Format) {
		f.timeFormat = layout
	}
}

// WithDateTimeFormat sets the short datetime layout (Go time layout).
func WithDateTimeFormat(layout string) FormatOption {
	return func(f *Format) {
		f.dateTimeFormat = layout
	}
}

// WithFullFormat sets the layout for a full date followed by a short time,
// e.g. "Monday 2 January 2006 at 15:04".
func WithFullFormat(layout string) FormatOption {
	return func(f *Format) {
		f.fullFormat = layout
	}
}

// Tag returns the BCP 47 tag of the format.
func (f *Format) Tag() string {
	return f.tag
}

// FormatDate formats a date with the locale's date layout.
func (f *Format) FormatDate(t time.Time) string {
	return t.Format(f.dateFormat)
}

// FormatTime formats a time with the locale's time layout.
func (f *Format) FormatTime(t time.Time) string {
	return t.Format(f.timeFormat)
}

// FormatDateTime formats a datetime with the locale's short datetime layout.
func (f *Format) FormatDateTime(t time.Time) string {
	return t.Format(f.dateTimeFormat)
}

// FormatFull formats t as a full date (weekday, day, month name, year)
// followed by a short time. The caller converts t to the wanted zone.
func (f *Format) FormatFull(t time.Time) string {
	return t.Format(f.fullFormat)
}

// Package locale formats dates and times the way a given English locale
// writes them, and supplies the clock those timestamps are read from.
//
// Go's time package only knows English month and weekday names, so the
// presets are limited to English locales. [ForTag] resolves a BCP 47 tag
// such as "en-GB" to the closest preset:
//
//	f, err := locale.ForTag("en-GB")
//	if err != nil {
//		return err
//	}
//	loc, _ := time.LoadLocation("Europe/London")
//	f.FormatFull(clock.Now().In(loc)) // "Monday 19 October 2026 at 14:05"
//
// Use [FixedClock] in tests to freeze "now".
package locale

package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrInvalidTag is returned when a locale tag cannot be parsed.
var ErrInvalidTag = errors.New("locale: invalid language tag")

// supported lists the presets in matcher order. The first entry is the
// fallback for tags with no close match.
var supported = []struct {
	tag    language.Tag
	format func() *Format
}{
	{language.BritishEnglish, FormatEnGB},
	{language.AmericanEnglish, FormatEnUS},
	{language.MustParse("en-IE"), FormatEnIE},
	{language.MustParse("en-AU"), FormatEnAU},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// ForTag returns the preset closest to the given BCP 47 tag.
// Unsupported languages fall back to en-GB.
func ForTag(tag string) (*Format, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, err)
	}

	_, idx, _ := matcher.Match(t)
	return supported[idx].format(), nil
}

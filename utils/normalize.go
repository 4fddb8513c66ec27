package utils

import (
	"strings"
	"unicode"
)

// NormalizeLocation canonicalizes a free-text state or district name so that
// the three source datasets and incoming queries agree on one spelling:
// surrounding whitespace is stripped, the "&" conjunction becomes "And", and
// the result is title-cased. Applying it twice yields the same output.
func NormalizeLocation(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "&", "And")
	return titleCase(name)
}

// titleCase uppercases the first letter of every alphabetic run and lowers
// the rest ("JAMMU AND KASHMIR" -> "Jammu And Kashmir"). The rule must be
// byte-for-byte identical at ingestion and query time, so it lives here
// rather than behind a library whose word-boundary rules could drift.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// MaxInputLength caps CleanInput output, in characters.
const MaxInputLength = 10000

var (
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

	// bluemonday policies are safe for concurrent use once built.
	strictPolicy = bluemonday.StrictPolicy()
)

// RemoveControlChars drops ANSI escape sequences and control characters
// other than newline, carriage return and tab.
func RemoveControlChars(s string) string {
	s = ansiEscapeRegex.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// LimitLength truncates s to at most max characters.
func LimitLength(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func limitInput(s string) string { return LimitLength(s, MaxInputLength) }

var cleanInput = Compose(
	RemoveControlChars,
	strings.TrimSpace,
	limitInput,
)

// CleanInput returns a cleaned copy of free-text input: no control
// characters, no surrounding whitespace, at most MaxInputLength characters.
func CleanInput(s string) string {
	return cleanInput(s)
}

// StripTags removes every HTML element, keeping text content. Entities in
// the output are escaped, so the result is safe to place in HTML text.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}

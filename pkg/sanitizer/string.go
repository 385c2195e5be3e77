package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SingleLine flattens newlines and tabs into spaces, collapsing the result.
func SingleLine(s string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	return CollapseWhitespace(replacer.Replace(s))
}

// RemoveControlChars strips non-printable control characters, keeping
// regular whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes HTML tags from user input. This is a cleanup helper,
// not an XSS defence; rendering always escapes separately.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML escapes special characters for safe inclusion in markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// Truncate cuts a string to at most maxLen runes.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// NormalizeEmail lowercases an address and trims surrounding whitespace.
// It deliberately leaves plus-tags and dots alone; collapsing those is a
// provider-specific policy, not normalization.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import "strings"

// MaxInputLength caps the characters kept from a user message
const MaxInputLength = 8000

// Sanitize strips surrounding whitespace and truncates to MaxInputLength
// characters. Excess input is dropped silently. Whitespace exposed by the
// cut is trimmed too, so Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(text string) string {
	text = strings.TrimSpace(text)

	count := 0
	for i := range text {
		if count == MaxInputLength {
			return strings.TrimSpace(text[:i])
		}
		count++
	}
	return text
}

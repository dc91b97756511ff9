package http

import (
	"strings"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxNameLength     = 64
	MaxLabelLength    = 256
	MaxMessageLength  = 10000
	MaxDocumentLength = 50000 // Documents are injected into prompts
)

// SanitizeString removes null bytes and control characters
func SanitizeString(s string) string {
	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")

	// Keep only valid UTF-8
	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// ValidateLength checks if string is within bounds
func ValidateLength(s string, min, max int) bool {
	l := len(s)
	return l >= min && l <= max
}

package textutil

import (
	"strings"
	"unicode"
)

// IsInt reports whether s is a base-10 integer literal. Surrounding
// whitespace and a leading sign are allowed, digits may be any Unicode
// decimal digit, and single underscores may separate digits ("1_000").
// Magnitude is unbounded.
func IsInt(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}

	prevUnderscore := true // a leading underscore is rejected
	for _, r := range s {
		switch {
		case r == '_':
			if prevUnderscore {
				return false
			}
			prevUnderscore = true
		case unicode.IsDigit(r):
			prevUnderscore = false
		default:
			return false
		}
	}
	return !prevUnderscore
}

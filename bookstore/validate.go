package bookstore

import "strings"

// ValidDate reports whether s has the loose YYYY-MM-DD shape: exactly ten
// characters containing exactly two hyphens. This is deliberately not a
// calendar check; superficially similar strings pass.
func ValidDate(s string) bool {
	return len(s) == 10 && strings.Count(s, "-") == 2
}

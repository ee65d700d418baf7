package common

import "strings"

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// TrimQuery normalizes user-entered search text. An all-whitespace
// query trims to empty, which callers treat as "nothing entered".
func TrimQuery(s string) string {
	return strings.TrimSpace(s)
}

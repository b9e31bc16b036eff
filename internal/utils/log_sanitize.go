// Package utils holds small helpers shared across layers.
package utils

import "strings"

// SanitizeForLog strips characters that would let client-supplied values
// forge extra log lines or corrupt log output.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// drop other control characters
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package envexpr expands ${env.KEY} expressions in configuration values.
package envexpr

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// Expand replaces every ${env.KEY} in value with the value of the
// environment variable KEY, empty when unset.  An expression whose key is
// not made of letters, digits or '_' is kept literally; an unterminated one
// ends the expansion.
func Expand(value string) string {
	if !strings.Contains(value, prefix) {
		return value
	}
	var b strings.Builder
	for {
		before, after, found := strings.Cut(value, prefix)
		b.WriteString(before)
		if !found {
			break
		}
		key, rest, closed := strings.Cut(after, "}")
		if !closed {
			b.WriteString(prefix)
			b.WriteString(after)
			break
		}
		if !isKey(key) {
			// nested expressions inside the literal are still expanded
			b.WriteString(prefix)
			value = after
			continue
		}
		b.WriteString(os.Getenv(key))
		value = rest
	}
	return b.String()
}

func isKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

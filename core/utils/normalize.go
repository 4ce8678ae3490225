package utils

import (
	"regexp"
	"strings"
)

var ufPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// NormalizeUF uppercases and validates a two-letter region code. Invalid
// input yields the empty string.
func NormalizeUF(uf string) string {
	text := strings.ToUpper(strings.TrimSpace(uf))
	if ufPattern.MatchString(text) {
		return text
	}
	return ""
}

// SplitList normalizes a list-valued input: each raw value may itself be
// a comma-separated list, entries are trimmed and blanks dropped.
func SplitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

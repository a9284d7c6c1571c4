package utils

import (
	"strconv"
	"strings"
)

// CleanNumeric strips thousands separators, percent signs and surrounding
// whitespace from a numeric cell value. It does not validate the remainder;
// callers parse it and treat failure as null.
func CleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	return strings.TrimSpace(s)
}

// ToInt parses a cell value into an int, returning 0 for anything unparseable.
func ToInt(s string) int {
	i, _ := strconv.Atoi(CleanNumeric(s))
	return i
}

// IsNumeric reports whether a string consists solely of ASCII digits.
// Used to distinguish literal case/service codes from free-form identifiers.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TitleLabel converts a canonical underscore token into a display label,
// e.g. "GO_LIVE" -> "Go Live".
func TitleLabel(token string) string {
	words := strings.Split(strings.ToLower(token), "_")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(out, " ")
}

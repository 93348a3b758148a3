// Package plan parses the plain-text planning documents: the task list,
// the milestone list, and the project metadata file.
package plan

import (
	"math"
	"strconv"
	"strings"
)

// ParseScalar converts a trimmed scalar token into a typed value.
// Results are one of: nil, bool, float64, string, or []any of those.
// The check order matters: quote stripping runs before inline-list
// detection, which runs before numeric coercion, which runs before the
// string fallback. Every input maps to some value; ParseScalar never
// fails.
func ParseScalar(token string) any {
	s := strings.TrimSpace(token)

	if s == "" || s == "null" || s == "~" {
		return nil
	}
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if unquoted, ok := stripQuotes(s); ok {
		return unquoted
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseInlineList(s[1 : len(s)-1])
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return n
	}
	return s
}

// stripQuotes removes a matching pair of single or double quotes. There
// is no escape processing; the quoted form exists so values like "a,b"
// or "3" survive as strings.
func stripQuotes(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// parseInlineList splits the bracket contents on commas and parses each
// element as a scalar. Nested brackets and escaped commas are not
// supported: a comma inside a nested list splits anyway. That is a
// documented limitation of the format, not something to repair here.
func parseInlineList(inner string) []any {
	if strings.TrimSpace(inner) == "" {
		return []any{}
	}
	parts := strings.Split(inner, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		out = append(out, ParseScalar(p))
	}
	return out
}

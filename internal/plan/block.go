package plan

import (
	"regexp"
	"strings"
)

var (
	keyLineRe  = regexp.MustCompile(`^(\w+):\s*(.*)$`)
	listItemRe = regexp.MustCompile(`^-\s+(.*)$`)
)

// ParseBlock parses an indented block of key/value lines and list
// entries into a mapping. Keys are single-level `\w+` names; list
// entries are either scalars or flat objects. Deeper nesting than
// "array of flat objects" is outside the format.
//
// The parser is a single pass over the lines with an explicit index
// cursor; object entries consume their continuation lines by advancing
// the cursor past them. Malformed lines are skipped, never reported.
func ParseBlock(src string) map[string]any {
	lines := strings.Split(src, "\n")
	out := make(map[string]any)
	currentKey := ""

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := keyLineRe.FindStringSubmatch(trimmed); m != nil {
			currentKey = m[1]
			value := strings.TrimSpace(m[2])
			if value == "" || value == "[]" {
				// An empty value opens a list so that following
				// `- ` lines append instead of replacing.
				out[currentKey] = []any{}
			} else {
				out[currentKey] = ParseScalar(value)
			}
			continue
		}

		if m := listItemRe.FindStringSubmatch(trimmed); m != nil && currentKey != "" {
			arr, ok := out[currentKey].([]any)
			if !ok {
				// Coerce a stray scalar to a list. Should not
				// normally trigger.
				arr = []any{}
			}
			item := strings.TrimSpace(m[1])
			if strings.Contains(item, ":") {
				obj, next := parseObjectItem(lines, i, item)
				arr = append(arr, obj)
				i = next
			} else {
				arr = append(arr, ParseScalar(item))
			}
			out[currentKey] = arr
		}
	}

	return out
}

// parseObjectItem builds a flat object from a `- key: value` list entry
// plus any following lines indented strictly deeper than the list
// marker. It returns the object and the index of the last consumed
// line. Scanning stops at the first line whose indentation falls back
// to the marker's level or which starts a new list item.
func parseObjectItem(lines []string, start int, first string) (map[string]any, int) {
	obj := make(map[string]any)
	addObjectPair(obj, first)

	markerIndent := indentOf(lines[start])
	last := start
	for j := start + 1; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			last = j
			continue
		}
		if indentOf(lines[j]) <= markerIndent || strings.HasPrefix(trimmed, "- ") {
			break
		}
		addObjectPair(obj, trimmed)
		last = j
	}
	return obj, last
}

// addObjectPair parses a `key: value` pair into obj, ignoring lines
// that do not carry a `\w+` key.
func addObjectPair(obj map[string]any, line string) {
	m := keyLineRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	obj[m[1]] = ParseScalar(m[2])
}

func indentOf(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

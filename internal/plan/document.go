package plan

import (
	"regexp"
	"strings"
)

const fence = "---"

// ExtractList pulls a named top-level list out of a document that
// begins with a fenced block (`---` ... `---`). The fenced body is fed
// to ParseBlock; entries that are not objects are dropped. A missing
// fence, a missing field, or a non-list field all yield an empty list
// rather than an error.
func ExtractList(doc, name string) []map[string]any {
	body, ok := fencedBody(doc)
	if !ok {
		return nil
	}
	fields := ParseBlock(body)
	arr, ok := fields[name].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, entry := range arr {
		if obj, ok := entry.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// fencedBody returns the lines between the first pair of `---` fences.
func fencedBody(doc string) (string, bool) {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")
	open := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == fence {
			open = i
			break
		}
	}
	if open < 0 {
		return "", false
	}
	for j := open + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == fence {
			return strings.Join(lines[open+1:j], "\n"), true
		}
	}
	return "", false
}

var (
	sectionRe  = regexp.MustCompile(`^(project|stakeholders|scope):\s*$`)
	notesRe    = regexp.MustCompile(`^notes:\s*(.*)$`)
	indentedRe = regexp.MustCompile(`^\s{2,}(\w+):\s*(.*)$`)
)

// ParseProjectDoc scans a flat sectioned key/value document. Top-level
// `project:`, `stakeholders:`, and `scope:` headers switch the active
// section; a top-level `notes:` key is captured on its own and clears
// the active section. Indented `key: value` lines land in the active
// section. Anything else is ignored.
func ParseProjectDoc(doc string) ProjectMeta {
	meta := ProjectMeta{
		Project:      make(map[string]any),
		Stakeholders: make(map[string]any),
		Scope:        make(map[string]any),
	}
	sections := map[string]map[string]any{
		"project":      meta.Project,
		"stakeholders": meta.Stakeholders,
		"scope":        meta.Scope,
	}

	active := ""
	for _, line := range strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n") {
		if !strings.HasPrefix(line, " ") {
			if m := sectionRe.FindStringSubmatch(line); m != nil {
				active = m[1]
				continue
			}
			if m := notesRe.FindStringSubmatch(line); m != nil {
				meta.Notes = ParseScalar(m[1])
				active = ""
				continue
			}
		}
		if active == "" {
			continue
		}
		if m := indentedRe.FindStringSubmatch(line); m != nil {
			sections[active][m[1]] = ParseScalar(m[2])
		}
	}

	return meta
}

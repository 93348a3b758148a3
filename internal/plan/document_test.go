package plan

import (
	"reflect"
	"testing"
)

func TestExtractList(t *testing.T) {
	doc := "---\ntasks:\n  - title: A\n    status: done\n  - title: B\n    status: blocked\n---\n\nFree-form notes below the block are ignored.\n"

	recs := ExtractList(doc, "tasks")
	if len(recs) != 2 {
		t.Fatalf("record count = %d, want 2", len(recs))
	}
	if recs[0]["title"] != "A" || recs[0]["status"] != "done" {
		t.Errorf("recs[0] = %#v", recs[0])
	}
	if recs[1]["title"] != "B" || recs[1]["status"] != "blocked" {
		t.Errorf("recs[1] = %#v", recs[1])
	}
}

func TestExtractListMissingCases(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no fences", doc: "tasks:\n  - title: A\n"},
		{name: "unclosed fence", doc: "---\ntasks:\n  - title: A\n"},
		{name: "field absent", doc: "---\nmilestones: []\n---\n"},
		{name: "field not a list", doc: "---\ntasks: plain\n---\n"},
		{name: "empty document", doc: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractList(tt.doc, "tasks"); len(got) != 0 {
				t.Errorf("ExtractList = %#v, want empty", got)
			}
		})
	}
}

func TestExtractListSkipsScalarEntries(t *testing.T) {
	doc := "---\ntasks:\n  - plain string\n  - title: Real\n---\n"
	recs := ExtractList(doc, "tasks")
	if len(recs) != 1 {
		t.Fatalf("record count = %d, want 1", len(recs))
	}
	if recs[0]["title"] != "Real" {
		t.Errorf("recs[0] = %#v", recs[0])
	}
}

func TestParseProjectDoc(t *testing.T) {
	doc := `project:
  name: Atlas
  type: internal
  status: active
  start_date: 2026-01-05
  target_date: 2026-06-30

stakeholders:
  sponsor: Dana
  lead: Kim

scope:
  services: [api, web]
  headcount: 4

notes: mid-year check-in pending
`

	meta := ParseProjectDoc(doc)
	if meta.Field("name") != "Atlas" {
		t.Errorf("name = %q, want Atlas", meta.Field("name"))
	}
	if meta.Field("start_date") != "2026-01-05" {
		t.Errorf("start_date = %q", meta.Field("start_date"))
	}
	if meta.Stakeholders["sponsor"] != "Dana" {
		t.Errorf("sponsor = %#v", meta.Stakeholders["sponsor"])
	}
	if !reflect.DeepEqual(meta.Scope["services"], []any{"api", "web"}) {
		t.Errorf("services = %#v", meta.Scope["services"])
	}
	if meta.Scope["headcount"] != float64(4) {
		t.Errorf("headcount = %#v", meta.Scope["headcount"])
	}
	if meta.Notes != "mid-year check-in pending" {
		t.Errorf("notes = %#v", meta.Notes)
	}
}

func TestParseProjectDocNotesClearsSection(t *testing.T) {
	doc := `project:
  name: Atlas
notes: done early
  stray: value
`

	meta := ParseProjectDoc(doc)
	if meta.Field("name") != "Atlas" {
		t.Errorf("name = %q", meta.Field("name"))
	}
	// After notes: no section is active, so the indented line is dropped.
	if _, ok := meta.Project["stray"]; ok {
		t.Error("indented line after notes: landed in a section")
	}
}

func TestParseProjectDocEmptySections(t *testing.T) {
	meta := ParseProjectDoc("unrelated text\n")
	if meta.Project == nil || meta.Stakeholders == nil || meta.Scope == nil {
		t.Error("sections must default to empty maps, not nil")
	}
	if meta.Notes != nil {
		t.Errorf("notes = %#v, want nil", meta.Notes)
	}
}

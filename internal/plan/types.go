package plan

import (
	"fmt"
	"sort"
	"strconv"
)

// Status values recognized by the board. Unrecognized statuses pass
// through uninterpreted and simply land in no column.
const (
	StatusBacklog    = "backlog"
	StatusInProgress = "in-progress"
	StatusBlocked    = "blocked"
	StatusReview     = "review"
	StatusDone       = "done"
)

// StatusAchieved is the only milestone status with special meaning.
const StatusAchieved = "achieved"

// Task is one entry of the task document. Tasks are positional: there
// is no identity field, and a task lives only for the duration of a
// single build. An empty string means the field was absent.
type Task struct {
	Title    string
	Status   string
	Priority string
	Due      string
	Assignee string
}

// OverdueAt reports whether the task is overdue relative to today,
// where both dates are YYYY-MM-DD strings. Lexicographic comparison
// matches chronological order only for zero-padded ISO dates; the
// input data is trusted to hold that shape.
func (t Task) OverdueAt(today string) bool {
	return t.Due != "" && t.Due < today && t.Status != StatusDone
}

// Milestone is one entry of the milestone document. Tasks holds task
// titles for display only; they are never cross-referenced against the
// task list.
type Milestone struct {
	Title  string
	Due    string
	Status string
	Tasks  []string
}

// Achieved reports whether the milestone carries the "achieved" status.
func (m Milestone) Achieved() bool {
	return m.Status == StatusAchieved
}

// OverdueAt reports whether an unachieved milestone's due date has
// passed.
func (m Milestone) OverdueAt(today string) bool {
	return !m.Achieved() && m.Due != "" && m.Due < today
}

// ProjectMeta holds the three fixed sections of the project document
// plus the optional top-level notes value. Rendering only consumes a
// handful of project.* keys; everything else is parsed and kept for
// extension.
type ProjectMeta struct {
	Project      map[string]any
	Stakeholders map[string]any
	Scope        map[string]any
	Notes        any
}

// Field returns a project-section value as a display string, or ""
// when absent or null.
func (p ProjectMeta) Field(key string) string {
	if p.Project == nil {
		return ""
	}
	return Stringify(p.Project[key])
}

// TaskFromRecord decodes a parsed record into a Task. Missing and null
// fields decode to empty strings.
func TaskFromRecord(rec map[string]any) Task {
	return Task{
		Title:    Stringify(rec["title"]),
		Status:   Stringify(rec["status"]),
		Priority: Stringify(rec["priority"]),
		Due:      Stringify(rec["due"]),
		Assignee: Stringify(rec["assignee"]),
	}
}

// MilestoneFromRecord decodes a parsed record into a Milestone.
func MilestoneFromRecord(rec map[string]any) Milestone {
	m := Milestone{
		Title:  Stringify(rec["title"]),
		Due:    Stringify(rec["due"]),
		Status: Stringify(rec["status"]),
	}
	if arr, ok := rec["tasks"].([]any); ok {
		for _, entry := range arr {
			if s := Stringify(entry); s != "" {
				m.Tasks = append(m.Tasks, s)
			}
		}
	}
	return m
}

// TasksFromRecords decodes a record list in document order.
func TasksFromRecords(recs []map[string]any) []Task {
	tasks := make([]Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, TaskFromRecord(rec))
	}
	return tasks
}

// MilestonesFromRecords decodes a record list in document order.
func MilestonesFromRecords(recs []map[string]any) []Milestone {
	ms := make([]Milestone, 0, len(recs))
	for _, rec := range recs {
		ms = append(ms, MilestoneFromRecord(rec))
	}
	return ms
}

// SortMilestones returns a copy sorted ascending by due date. A
// milestone without a due date sorts after any dated one; two undated
// milestones compare equal, so the sort is stable with respect to
// document order. The asymmetry of the comparator is deliberate and
// load-bearing for the timeline view.
func SortMilestones(ms []Milestone) []Milestone {
	sorted := make([]Milestone, len(ms))
	copy(sorted, ms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareDue(sorted[i].Due, sorted[j].Due) < 0
	})
	return sorted
}

func compareDue(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Stringify renders a parsed scalar for display. Null and absence both
// come out as "", numbers drop trailing zeros, lists are not expected
// here and fall back to fmt.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

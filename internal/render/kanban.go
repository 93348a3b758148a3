package render

import (
	"html/template"
	"strings"

	"github.com/plandash/plandash/internal/plan"
)

// boardColumns fixes the kanban column order. A task whose status
// matches none of these simply appears in no column.
var boardColumns = []struct {
	Status string
	Label  string
}{
	{plan.StatusBacklog, "Backlog"},
	{plan.StatusInProgress, "In Progress"},
	{plan.StatusBlocked, "Blocked"},
	{plan.StatusReview, "Review"},
	{plan.StatusDone, "Done"},
}

type kanbanColumn struct {
	Label string
	Class string
	Cards []kanbanCard
}

type kanbanCard struct {
	Title    string
	Priority string
	Due      string
	Assignee string
	Overdue  bool
}

var kanbanTmpl = template.Must(template.New("kanban").Parse(`<div class="board">
{{- range .}}
  <div class="column {{.Class}}">
    <h2>{{.Label}} <span class="count">{{len .Cards}}</span></h2>
{{- if .Cards}}
{{- range .Cards}}
    <div class="card">
      <div class="card-title">{{.Title}}</div>
      <div class="card-meta">
        {{- if .Priority}}<span class="badge">{{.Priority}}</span>{{end}}
        {{- if .Due}}<span class="due{{if .Overdue}} due-overdue{{end}}">{{.Due}}</span>{{end}}
        {{- if .Assignee}}<span class="assignee">{{.Assignee}}</span>{{end}}
      </div>
    </div>
{{- end}}
{{- else}}
    <p class="empty">No tasks</p>
{{- end}}
  </div>
{{- end}}
</div>
`))

// KanbanView renders the board: one column per fixed status, cards in
// document order, and a placeholder for empty columns.
func KanbanView(tasks []plan.Task, today string) template.HTML {
	columns := make([]kanbanColumn, 0, len(boardColumns))
	for _, col := range boardColumns {
		c := kanbanColumn{Label: col.Label, Class: "col-" + cssToken(col.Status)}
		for _, t := range tasks {
			if t.Status != col.Status {
				continue
			}
			title := t.Title
			if title == "" {
				title = "(untitled)"
			}
			c.Cards = append(c.Cards, kanbanCard{
				Title:    title,
				Priority: t.Priority,
				Due:      t.Due,
				Assignee: t.Assignee,
				Overdue:  t.OverdueAt(today),
			})
		}
		columns = append(columns, c)
	}
	return execFragment(kanbanTmpl, columns)
}

// cssToken lowers a status value into a safe CSS class fragment.
func cssToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

package render

import (
	"html/template"

	"github.com/plandash/plandash/internal/plan"
)

type timelineEntry struct {
	Title string
	Due   string
	State string // achieved, overdue, or upcoming
	Tasks []string
}

var timelineTmpl = template.Must(template.New("timeline").Parse(`{{if .}}<ol class="timeline">
{{- range .}}
  <li class="milestone milestone-{{.State}}">
    <span class="marker"></span>
    <div class="milestone-body">
      <div class="milestone-head">
        <span class="milestone-title">{{.Title}}</span>
        {{- if .Due}}<span class="milestone-due">{{.Due}}</span>{{end}}
        <span class="tag tag-{{.State}}">{{.State}}</span>
      </div>
{{- if .Tasks}}
      <ul class="milestone-tasks">
{{- range .Tasks}}
        <li>{{.}}</li>
{{- end}}
      </ul>
{{- end}}
    </div>
  </li>
{{- end}}
</ol>
{{else}}<p class="empty">No milestones defined</p>
{{end}}`))

// TimelineView renders milestones sorted by due date. Achieved wins
// over overdue, and undated milestones trail the list (see
// plan.SortMilestones for the exact ordering).
func TimelineView(milestones []plan.Milestone, today string) template.HTML {
	sorted := plan.SortMilestones(milestones)
	entries := make([]timelineEntry, 0, len(sorted))
	for _, m := range sorted {
		state := "upcoming"
		switch {
		case m.Achieved():
			state = "achieved"
		case m.OverdueAt(today):
			state = "overdue"
		}
		title := m.Title
		if title == "" {
			title = "(untitled)"
		}
		entries = append(entries, timelineEntry{
			Title: title,
			Due:   m.Due,
			State: state,
			Tasks: m.Tasks,
		})
	}
	return execFragment(timelineTmpl, entries)
}

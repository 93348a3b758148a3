// Package render turns parsed planning data into the HTML fragments of
// the dashboard and assembles them into one self-contained page. Every
// view function is pure: data plus a "today" date string in, fragment
// out.
package render

import (
	"html/template"

	"github.com/plandash/plandash/internal/plan"
)

// Stats aggregates the headline counts shown above the tabs.
type Stats struct {
	Total      int
	Done       int
	InProgress int
	Blocked    int
	Overdue    int
}

// ComputeStats tallies task counts for the summary strip. Overdue uses
// the same predicate as the kanban cards: due strictly before today and
// status not done.
func ComputeStats(tasks []plan.Task, today string) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case plan.StatusDone:
			s.Done++
		case plan.StatusInProgress:
			s.InProgress++
		case plan.StatusBlocked:
			s.Blocked++
		}
		if t.OverdueAt(today) {
			s.Overdue++
		}
	}
	return s
}

var statsTmpl = template.Must(template.New("stats").Parse(`<section class="stats">
  <div class="stat"><span class="stat-value">{{.Total}}</span><span class="stat-label">tasks</span></div>
  <div class="stat"><span class="stat-value">{{.Done}}</span><span class="stat-label">done</span></div>
  <div class="stat"><span class="stat-value">{{.InProgress}}</span><span class="stat-label">in progress</span></div>
  <div class="stat"><span class="stat-value">{{.Blocked}}</span><span class="stat-label">blocked</span></div>
  <div class="stat{{if gt .Overdue 0}} stat-alert{{end}}"><span class="stat-value">{{.Overdue}}</span><span class="stat-label">overdue</span></div>
</section>
`))

// StatsView renders the summary strip.
func StatsView(tasks []plan.Task, today string) template.HTML {
	return execFragment(statsTmpl, ComputeStats(tasks, today))
}

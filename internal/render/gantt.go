package render

import (
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/plandash/plandash/internal/plan"
)

const dayLayout = "2006-01-02"

// ganttWindow is the date range the chart maps onto 0–100%.
type ganttWindow struct {
	start time.Time
	end   time.Time
}

func (w ganttWindow) pos(t time.Time) float64 {
	total := w.end.Sub(w.start)
	if total <= 0 {
		return 0
	}
	return 100 * float64(t.Sub(w.start)) / float64(total)
}

func (w ganttWindow) days() float64 {
	return w.end.Sub(w.start).Hours() / 24
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dayLayout, s)
	return t, err == nil
}

// computeWindow derives the display window from every task and
// milestone due date, widened to cover the project's start and target
// dates when those fall outside. Short ranges get a week of padding on
// both ends; longer ones 5% of the span. Returns false when no due
// date parses anywhere.
func computeWindow(tasks []plan.Task, milestones []plan.Milestone, meta plan.ProjectMeta) (ganttWindow, bool) {
	var min, max time.Time
	seen := false
	grow := func(t time.Time) {
		if !seen {
			min, max = t, t
			seen = true
			return
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}

	for _, t := range tasks {
		if d, ok := parseDay(t.Due); ok {
			grow(d)
		}
	}
	for _, m := range milestones {
		if d, ok := parseDay(m.Due); ok {
			grow(d)
		}
	}
	if !seen {
		return ganttWindow{}, false
	}

	if d, ok := parseDay(meta.Field("start_date")); ok && d.Before(min) {
		min = d
	}
	if d, ok := parseDay(meta.Field("target_date")); ok && d.After(max) {
		max = d
	}

	span := max.Sub(min)
	pad := span / 20
	if span < 14*24*time.Hour {
		pad = 7 * 24 * time.Hour
	}
	return ganttWindow{start: min.Add(-pad), end: max.Add(pad)}, true
}

type ganttRow struct {
	Title     string
	Badge     string
	Class     string
	Left      string
	Width     string
	Milestone bool
}

type ganttTick struct {
	Left  string
	Label string
}

type ganttData struct {
	Rows      []ganttRow
	Ticks     []ganttTick
	TodayLeft string
	Undated   bool
}

var ganttTmpl = template.Must(template.New("gantt").Parse(`{{if .Rows}}<div class="gantt">
  <div class="gantt-chart">
    {{- if not .Undated}}
    <div class="today-line" style="left:{{.TodayLeft}}%"></div>
    {{- end}}
{{- range .Rows}}
    <div class="gantt-row{{if .Milestone}} gantt-row-milestone{{end}}">
      <span class="gantt-label">{{.Title}}{{if .Badge}} <span class="badge">{{.Badge}}</span>{{end}}</span>
      <div class="gantt-track">
        <div class="gantt-bar {{.Class}}" style="left:{{.Left}}%;width:{{.Width}}%"></div>
      </div>
    </div>
{{- end}}
  </div>
{{- if .Ticks}}
  <div class="gantt-axis">
{{- range .Ticks}}
    <span class="tick" style="left:{{.Left}}%">{{.Label}}</span>
{{- end}}
  </div>
{{- end}}
</div>
{{else}}<p class="empty">No scheduled work to chart</p>
{{end}}`))

// GanttView renders the chart. With no due dates anywhere it falls
// back to spreading the tasks evenly along the track; with dates it
// places proportional bars inside the computed window.
func GanttView(tasks []plan.Task, milestones []plan.Milestone, meta plan.ProjectMeta, today string) template.HTML {
	window, dated := computeWindow(tasks, milestones, meta)
	if !dated {
		return execFragment(ganttTmpl, spreadGantt(tasks))
	}
	return execFragment(ganttTmpl, datedGantt(tasks, milestones, window, today))
}

// spreadGantt lays tasks out evenly in document order when nothing has
// a due date. Zero tasks and zero milestones produce the placeholder.
func spreadGantt(tasks []plan.Task) ganttData {
	data := ganttData{Undated: true}
	n := len(tasks)
	if n == 0 {
		return data
	}
	width := 60.0 / float64(n)
	if width < 8 {
		width = 8
	}
	for i, t := range tasks {
		data.Rows = append(data.Rows, ganttRow{
			Title: rowTitle(t.Title),
			Badge: t.Priority,
			Class: "status-" + cssToken(t.Status),
			Left:  pct(float64(i) / float64(n) * 80),
			Width: pct(width),
		})
	}
	return data
}

func datedGantt(tasks []plan.Task, milestones []plan.Milestone, window ganttWindow, today string) ganttData {
	var data ganttData

	dated := make([]plan.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := parseDay(t.Due); ok {
			dated = append(dated, t)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].Due < dated[j].Due })

	// Bars end exactly at the due position and extend backward by a
	// fixed width, clipped at the left edge.
	width := clampF(80/float64(max(len(dated), 1)), 8, 15)
	for _, t := range dated {
		due, _ := parseDay(t.Due)
		end := window.pos(due)
		left := end - width
		if left < 0 {
			left = 0
		}
		data.Rows = append(data.Rows, ganttRow{
			Title: rowTitle(t.Title),
			Badge: t.Priority,
			Class: "status-" + cssToken(t.Status),
			Left:  pct(left),
			Width: pct(end - left),
		})
	}

	for _, m := range milestones {
		due, ok := parseDay(m.Due)
		if !ok {
			continue
		}
		left := clampF(window.pos(due)-1, 0, 98)
		data.Rows = append(data.Rows, ganttRow{
			Title:     rowTitle(m.Title),
			Class:     "marker-bar",
			Left:      pct(left),
			Width:     pct(2),
			Milestone: true,
		})
	}

	if t, ok := parseDay(today); ok {
		data.TodayLeft = pct(clampF(window.pos(t), 0, 100))
	} else {
		data.TodayLeft = pct(0)
	}

	data.Ticks = axisTicks(window)
	return data
}

// axisTicks spaces 3–6 date labels evenly across the window, one tick
// roughly per week.
func axisTicks(window ganttWindow) []ganttTick {
	count := int(window.days() / 7)
	if count < 3 {
		count = 3
	}
	if count > 6 {
		count = 6
	}
	span := window.end.Sub(window.start)
	ticks := make([]ganttTick, 0, count)
	for i := 0; i < count; i++ {
		frac := float64(i) / float64(count-1)
		at := window.start.Add(time.Duration(frac * float64(span)))
		ticks = append(ticks, ganttTick{
			Left:  pct(frac * 100),
			Label: at.Format("Jan 2"),
		})
	}
	return ticks
}

func rowTitle(s string) string {
	if s == "" {
		return "(untitled)"
	}
	return s
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

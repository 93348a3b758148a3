package render

import (
	"fmt"
	"html/template"
	"strings"
)

// execFragment runs a fragment template. The templates are static and
// parsed at init, so an execution failure is a programming error; it
// degrades to an HTML comment instead of failing the build.
func execFragment(t *template.Template, data any) template.HTML {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return template.HTML(fmt.Sprintf("<!-- render %s: %v -->", t.Name(), err))
	}
	return template.HTML(b.String())
}

// PageData carries the assembled fragments and header fields into the
// page template.
type PageData struct {
	Title    string
	Subtitle string
	Today    string
	Stats    template.HTML
	Kanban   template.HTML
	Timeline template.HTML
	Gantt    template.HTML
}

// Page wraps the view fragments in a complete standalone HTML document
// with embedded styling and client-side tab switching. The kanban tab
// is active by default.
func Page(d PageData) (string, error) {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return b.String(), nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #10141f;
  --panel: #1a2030;
  --panel2: #222a3d;
  --text: #e8ecf5;
  --muted: #97a1b8;
  --border: rgba(255,255,255,0.09);
  --accent: #6f9bff;
  --good: #34d399;
  --warn: #fbbf24;
  --bad: #f87171;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
}
header { padding: 24px 32px 12px; }
header h1 { margin: 0 0 4px; font-size: 22px; }
header .subtitle { color: var(--muted); font-size: 13px; }
main { padding: 0 32px 40px; }
.stats { display: flex; gap: 12px; margin: 16px 0 20px; flex-wrap: wrap; }
.stat {
  background: var(--panel);
  border: 1px solid var(--border);
  border-radius: 10px;
  padding: 10px 18px;
  min-width: 90px;
  text-align: center;
}
.stat-value { display: block; font-size: 22px; font-weight: 700; }
.stat-label { color: var(--muted); font-size: 12px; }
.stat-alert .stat-value { color: var(--bad); }
.tabs { display: flex; gap: 6px; border-bottom: 1px solid var(--border); margin-bottom: 18px; }
.tab {
  background: none;
  border: none;
  border-bottom: 2px solid transparent;
  color: var(--muted);
  padding: 8px 14px;
  font-size: 14px;
  cursor: pointer;
}
.tab.active { color: var(--text); border-bottom-color: var(--accent); }
.view { display: none; }
.view.active { display: block; }
.empty { color: var(--muted); font-style: italic; padding: 12px 4px; }
.board { display: flex; gap: 14px; align-items: flex-start; overflow-x: auto; }
.column {
  background: var(--panel);
  border: 1px solid var(--border);
  border-radius: 10px;
  padding: 12px;
  min-width: 200px;
  flex: 1;
}
.column h2 { margin: 0 0 10px; font-size: 13px; text-transform: uppercase; letter-spacing: 0.4px; color: var(--muted); }
.column .count { float: right; color: var(--muted); font-weight: 400; }
.card {
  background: var(--panel2);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 10px;
  margin-bottom: 8px;
}
.card-title { font-size: 14px; margin-bottom: 6px; }
.card-meta { display: flex; gap: 8px; font-size: 12px; color: var(--muted); flex-wrap: wrap; }
.badge {
  background: rgba(111,155,255,0.18);
  color: var(--accent);
  border-radius: 999px;
  padding: 1px 8px;
  font-size: 11px;
}
.due-overdue { color: var(--bad); font-weight: 600; }
.timeline { list-style: none; margin: 0; padding: 0 0 0 18px; border-left: 2px solid var(--border); }
.milestone { position: relative; padding: 0 0 18px 16px; }
.milestone .marker {
  position: absolute;
  left: -25px;
  top: 4px;
  width: 10px;
  height: 10px;
  border-radius: 999px;
  background: var(--muted);
}
.milestone-achieved .marker { background: var(--good); }
.milestone-overdue .marker { background: var(--bad); }
.milestone-head { display: flex; gap: 10px; align-items: baseline; flex-wrap: wrap; }
.milestone-title { font-weight: 600; }
.milestone-due { color: var(--muted); font-size: 12px; }
.tag { font-size: 11px; border-radius: 999px; padding: 1px 8px; background: var(--panel2); color: var(--muted); }
.tag-achieved { color: var(--good); }
.tag-overdue { color: var(--bad); }
.milestone-tasks { margin: 6px 0 0; padding-left: 18px; color: var(--muted); font-size: 13px; }
.gantt-chart { position: relative; background: var(--panel); border: 1px solid var(--border); border-radius: 10px; padding: 14px 0; }
.gantt-row { display: flex; align-items: center; padding: 4px 14px; }
.gantt-label { width: 220px; flex-shrink: 0; font-size: 13px; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.gantt-track { position: relative; flex: 1; height: 16px; background: var(--panel2); border-radius: 4px; }
.gantt-bar { position: absolute; top: 0; height: 100%; border-radius: 4px; background: var(--accent); }
.status-done { background: var(--good); }
.status-blocked { background: var(--bad); }
.status-in-progress { background: var(--accent); }
.status-review { background: var(--warn); }
.status-backlog { background: var(--muted); }
.marker-bar { background: var(--warn); }
.today-line { position: absolute; top: 0; bottom: 0; width: 2px; background: var(--bad); opacity: 0.7; z-index: 1; }
.gantt-axis { position: relative; height: 22px; margin: 6px 14px 0 248px; }
.tick { position: absolute; transform: translateX(-50%); color: var(--muted); font-size: 11px; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Subtitle}}{{if .Subtitle}} &middot; {{end}}generated {{.Today}}</div>
</header>
<main>
{{.Stats}}
<nav class="tabs">
  <button class="tab active" data-view="kanban">Board</button>
  <button class="tab" data-view="timeline">Timeline</button>
  <button class="tab" data-view="gantt">Gantt</button>
</nav>
<section id="view-kanban" class="view active">
{{.Kanban}}
</section>
<section id="view-timeline" class="view">
{{.Timeline}}
</section>
<section id="view-gantt" class="view">
{{.Gantt}}
</section>
</main>
<script>
document.querySelectorAll('.tab').forEach(function (tab) {
  tab.addEventListener('click', function () {
    document.querySelectorAll('.tab').forEach(function (t) { t.classList.remove('active'); });
    document.querySelectorAll('.view').forEach(function (v) { v.classList.remove('active'); });
    tab.classList.add('active');
    document.getElementById('view-' + tab.dataset.view).classList.add('active');
  });
});
</script>
</body>
</html>
`))

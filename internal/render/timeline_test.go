package render

import (
	"strings"
	"testing"

	"github.com/plandash/plandash/internal/plan"
)

func TestTimelineViewStates(t *testing.T) {
	today := "2026-08-25"
	milestones := []plan.Milestone{
		{Title: "Shipped", Due: "2026-07-01", Status: "achieved"},
		{Title: "Slipped", Due: "2026-08-01"},
		{Title: "Ahead", Due: "2026-10-01"},
	}
	html := string(TimelineView(milestones, today))

	if !strings.Contains(html, "milestone-achieved") {
		t.Error("achieved milestone not marked")
	}
	if !strings.Contains(html, "milestone-overdue") {
		t.Error("overdue milestone not marked")
	}
	if !strings.Contains(html, "milestone-upcoming") {
		t.Error("upcoming milestone not marked")
	}
}

func TestTimelineViewAchievedBeatsOverdue(t *testing.T) {
	// An achieved milestone with a past due date is achieved, not
	// overdue.
	html := string(TimelineView([]plan.Milestone{
		{Title: "Old win", Due: "2026-01-01", Status: "achieved"},
	}, "2026-08-25"))
	if strings.Contains(html, "milestone-overdue") {
		t.Error("achieved milestone rendered as overdue")
	}
}

func TestTimelineViewSortedByDue(t *testing.T) {
	milestones := []plan.Milestone{
		{Title: "zz-late", Due: "2026-12-01"},
		{Title: "aa-early", Due: "2026-02-01"},
		{Title: "nn-undated"},
	}
	html := string(TimelineView(milestones, "2026-08-25"))
	early := strings.Index(html, "aa-early")
	late := strings.Index(html, "zz-late")
	undated := strings.Index(html, "nn-undated")
	if !(early < late && late < undated) {
		t.Errorf("order wrong: early=%d late=%d undated=%d", early, late, undated)
	}
}

func TestTimelineViewShowsTaskTitles(t *testing.T) {
	html := string(TimelineView([]plan.Milestone{
		{Title: "Beta", Due: "2026-10-01", Tasks: []string{"Finish docs", "Cut release"}},
	}, "2026-08-25"))
	if !strings.Contains(html, "Finish docs") || !strings.Contains(html, "Cut release") {
		t.Error("milestone task titles missing")
	}
}

func TestTimelineViewEmpty(t *testing.T) {
	html := string(TimelineView(nil, "2026-08-25"))
	if !strings.Contains(html, "No milestones defined") {
		t.Error("empty timeline placeholder missing")
	}
}

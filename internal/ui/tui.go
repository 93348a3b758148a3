// Package ui provides an optional read-only terminal preview of the
// dashboard views.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plandash/plandash/internal/build"
	"github.com/plandash/plandash/internal/config"
	"github.com/plandash/plandash/internal/plan"
	"github.com/plandash/plandash/internal/render"
)

// RunPreview starts the terminal preview. It mirrors the dashboard
// tabs: board, timeline, summary. Nothing is ever written; reloads
// re-read the input files from disk.
func RunPreview(ctx context.Context, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newPreviewModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

const (
	tabBoard = iota
	tabTimeline
	tabSummary
	tabCount
)

var tabLabels = [tabCount]string{"Board", "Timeline", "Summary"}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headingStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overdueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	achievedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type previewModel struct {
	cfg          *config.Config
	tab          int
	inputs       *build.Inputs
	loadErr      error
	today        string
	tickInterval time.Duration
}

type tickMsg time.Time

func newPreviewModel(cfg *config.Config) *previewModel {
	return &previewModel{
		cfg:          cfg,
		tickInterval: 2 * time.Second,
	}
}

func (m *previewModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
		case "1":
			m.tab = tabBoard
		case "2":
			m.tab = tabTimeline
		case "3":
			m.tab = tabSummary
		case "r", "f5":
			m.refresh()
		}
		return m, nil
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder
	writeTabBar(&b, m.tab)

	if m.loadErr != nil {
		b.WriteString("Error loading planning documents:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}
	if m.inputs == nil {
		b.WriteString("Loading...\n\n")
		writeFooter(&b)
		return b.String()
	}

	switch m.tab {
	case tabBoard:
		writeBoard(&b, m.inputs.Tasks, m.today)
	case tabTimeline:
		writeTimeline(&b, m.inputs.Milestones, m.today)
	case tabSummary:
		writeSummary(&b, m.inputs, m.today)
	}
	writeFooter(&b)
	return b.String()
}

func (m *previewModel) refresh() {
	m.today = time.Now().Format("2006-01-02")
	inputs, err := build.LoadInputs(m.cfg)
	if err != nil {
		m.loadErr = err
		m.inputs = nil
		return
	}
	m.loadErr = nil
	m.inputs = inputs
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTabBar(b *strings.Builder, active int) {
	parts := make([]string, 0, tabCount)
	for i, label := range tabLabels {
		if i == active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(parts, "  ") + "\n\n")
}

var boardOrder = []struct {
	status string
	label  string
}{
	{plan.StatusBacklog, "Backlog"},
	{plan.StatusInProgress, "In Progress"},
	{plan.StatusBlocked, "Blocked"},
	{plan.StatusReview, "Review"},
	{plan.StatusDone, "Done"},
}

func writeBoard(b *strings.Builder, tasks []plan.Task, today string) {
	for _, col := range boardOrder {
		var cards []plan.Task
		for _, t := range tasks {
			if t.Status == col.status {
				cards = append(cards, t)
			}
		}
		b.WriteString(headingStyle.Render(fmt.Sprintf("%s (%d)", col.label, len(cards))) + "\n")
		if len(cards) == 0 {
			b.WriteString(mutedStyle.Render("  no tasks") + "\n")
		}
		for _, t := range cards {
			b.WriteString("  " + formatTaskLine(t, today) + "\n")
		}
		b.WriteString("\n")
	}
}

func formatTaskLine(t plan.Task, today string) string {
	title := t.Title
	if title == "" {
		title = "(untitled)"
	}
	line := title
	if t.Priority != "" {
		line += " [" + t.Priority + "]"
	}
	if t.Due != "" {
		due := "due " + t.Due
		if t.OverdueAt(today) {
			due = overdueStyle.Render(due + " (overdue)")
		}
		line += "  " + due
	}
	if t.Assignee != "" {
		line += "  " + mutedStyle.Render("@"+t.Assignee)
	}
	return line
}

func writeTimeline(b *strings.Builder, milestones []plan.Milestone, today string) {
	sorted := plan.SortMilestones(milestones)
	if len(sorted) == 0 {
		b.WriteString(mutedStyle.Render("No milestones defined") + "\n\n")
		return
	}
	for _, m := range sorted {
		marker := "[ ]"
		switch {
		case m.Achieved():
			marker = achievedStyle.Render("[x]")
		case m.OverdueAt(today):
			marker = overdueStyle.Render("[!]")
		}
		title := m.Title
		if title == "" {
			title = "(untitled)"
		}
		b.WriteString(fmt.Sprintf("%s %s", marker, title))
		if m.Due != "" {
			b.WriteString(mutedStyle.Render("  " + m.Due))
		}
		b.WriteString("\n")
		for _, task := range m.Tasks {
			b.WriteString(mutedStyle.Render("      - "+task) + "\n")
		}
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, inputs *build.Inputs, today string) {
	name := inputs.Meta.Field("name")
	if name == "" {
		name = "Project"
	}
	b.WriteString(headingStyle.Render(name) + "\n")
	if status := inputs.Meta.Field("status"); status != "" {
		b.WriteString(mutedStyle.Render("status: "+status) + "\n")
	}
	if target := inputs.Meta.Field("target_date"); target != "" {
		b.WriteString(mutedStyle.Render("target: "+target) + "\n")
	}
	b.WriteString("\n")

	s := render.ComputeStats(inputs.Tasks, today)
	b.WriteString(fmt.Sprintf("  Tasks: %d  Done: %d  In Progress: %d  Blocked: %d", s.Total, s.Done, s.InProgress, s.Blocked))
	if s.Overdue > 0 {
		b.WriteString("  " + overdueStyle.Render(fmt.Sprintf("Overdue: %d", s.Overdue)))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Milestones: %d\n\n", len(inputs.Milestones)))
}

func writeFooter(b *strings.Builder) {
	b.WriteString(mutedStyle.Render("tab/1-3 switch view · r reload · q quit") + "\n")
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

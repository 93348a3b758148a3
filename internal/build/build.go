// Package build wires the loaders, renderers, and page assembler into
// the single pass that produces the dashboard file.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plandash/plandash/internal/config"
	"github.com/plandash/plandash/internal/plan"
	"github.com/plandash/plandash/internal/render"
)

// Inputs holds the parsed contents of the three planning documents.
type Inputs struct {
	Tasks      []plan.Task
	Milestones []plan.Milestone
	Meta       plan.ProjectMeta
}

// LoadInputs reads and parses the three input files. A missing or
// unreadable file is fatal; malformed content inside a file is not —
// the parsers degrade to whatever they can extract.
func LoadInputs(cfg *config.Config) (*Inputs, error) {
	tasksDoc, err := os.ReadFile(cfg.TasksFile)
	if err != nil {
		return nil, fmt.Errorf("read task document: %w", err)
	}
	milestonesDoc, err := os.ReadFile(cfg.MilestonesFile)
	if err != nil {
		return nil, fmt.Errorf("read milestone document: %w", err)
	}
	projectDoc, err := os.ReadFile(cfg.ProjectFile)
	if err != nil {
		return nil, fmt.Errorf("read project document: %w", err)
	}

	return &Inputs{
		Tasks:      plan.TasksFromRecords(plan.ExtractList(string(tasksDoc), "tasks")),
		Milestones: plan.MilestonesFromRecords(plan.ExtractList(string(milestonesDoc), "milestones")),
		Meta:       plan.ParseProjectDoc(string(projectDoc)),
	}, nil
}

// Builder runs one dashboard generation pass.
type Builder struct {
	cfg    *config.Config
	logger *log.Logger

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// New creates a builder.
func New(cfg *config.Config, logger *log.Logger) *Builder {
	return &Builder{cfg: cfg, logger: logger, now: time.Now}
}

// Run reads the inputs, renders the page, and writes the output file.
// The whole pass is synchronous and idempotent; any failure leaves the
// caller to report it and exit non-zero.
func (b *Builder) Run() error {
	b.logger.Info("reading planning documents",
		"tasks", b.cfg.TasksFile,
		"milestones", b.cfg.MilestonesFile,
		"project", b.cfg.ProjectFile)

	inputs, err := LoadInputs(b.cfg)
	if err != nil {
		return err
	}

	today := b.now().Format("2006-01-02")
	b.logger.Info("parsed documents",
		"tasks", len(inputs.Tasks),
		"milestones", len(inputs.Milestones))

	page, err := render.Page(render.PageData{
		Title:    b.title(inputs.Meta),
		Subtitle: subtitle(inputs.Meta),
		Today:    today,
		Stats:    render.StatsView(inputs.Tasks, today),
		Kanban:   render.KanbanView(inputs.Tasks, today),
		Timeline: render.TimelineView(inputs.Milestones, today),
		Gantt:    render.GanttView(inputs.Tasks, inputs.Milestones, inputs.Meta, today),
	})
	if err != nil {
		return err
	}

	outDir := filepath.Dir(b.cfg.OutputFile)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(b.cfg.OutputFile, []byte(page), 0644); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}

	b.logger.Info("dashboard written", "path", b.cfg.OutputFile)
	return nil
}

func (b *Builder) title(meta plan.ProjectMeta) string {
	if b.cfg.Title != "" {
		return b.cfg.Title
	}
	if name := meta.Field("name"); name != "" {
		return name
	}
	return "Project Dashboard"
}

// subtitle joins the project type and status when present.
func subtitle(meta plan.ProjectMeta) string {
	kind := meta.Field("type")
	status := meta.Field("status")
	switch {
	case kind != "" && status != "":
		return kind + " · " + status
	case kind != "":
		return kind
	default:
		return status
	}
}

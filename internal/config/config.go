// Package config handles configuration loading and defaults.
package config

// Default values. They mirror the historical fixed relative paths of
// the generator, so a bare `plandash` run behaves as before.
const (
	DefaultTasksFile      = "tasks.md"
	DefaultMilestonesFile = "milestones.md"
	DefaultProjectFile    = "project.txt"
	DefaultOutputFile     = "dashboard/index.html"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for plandash.
type Config struct {
	// Input documents
	TasksFile      string `toml:"tasks_file"`
	MilestonesFile string `toml:"milestones_file"`
	ProjectFile    string `toml:"project_file"`

	// Output
	OutputFile string `toml:"output_file"`

	// Title overrides project.name in the page header.
	Title string `toml:"title"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// ProjectRoot anchors relative paths. Defaults to the working
	// directory; not persisted in config files.
	ProjectRoot string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.MilestonesFile = DefaultMilestonesFile
	cfg.ProjectFile = DefaultProjectFile
	cfg.OutputFile = DefaultOutputFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

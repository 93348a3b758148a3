package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS config dir or ~/.plandash.toml)
// 3. Project config file (plandash.toml or .plandash.toml in the working directory)
// 4. Environment variables (PLANDASH_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PLANDASH_TASKS"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("PLANDASH_MILESTONES"); v != "" {
		cfg.MilestonesFile = v
	}
	if v := os.Getenv("PLANDASH_PROJECT"); v != "" {
		cfg.ProjectFile = v
	}
	if v := os.Getenv("PLANDASH_OUT"); v != "" {
		cfg.OutputFile = v
	}
	if v := os.Getenv("PLANDASH_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("PLANDASH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANDASH_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PLANDASH_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

// parseFlags registers the global flags on fs and parses args into cfg.
// Flags override every other source.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Task document path")
	fs.StringVar(&cfg.MilestonesFile, "milestones", cfg.MilestonesFile, "Milestone document path")
	fs.StringVar(&cfg.ProjectFile, "project", cfg.ProjectFile, "Project metadata document path")
	fs.StringVar(&cfg.OutputFile, "out", cfg.OutputFile, "Output HTML file path")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Dashboard title (defaults to the project name)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|logfmt|json)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	return fs.Parse(args)
}

// finalizeConfig expands and anchors paths.
func finalizeConfig(cfg *Config) error {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	cfg.MilestonesFile = expandPath(cfg.MilestonesFile)
	cfg.ProjectFile = expandPath(cfg.ProjectFile)
	cfg.OutputFile = expandPath(cfg.OutputFile)

	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	for _, p := range []*string{&cfg.TasksFile, &cfg.MilestonesFile, &cfg.ProjectFile, &cfg.OutputFile} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(cfg.ProjectRoot, *p)
		}
	}

	return nil
}

// findUserConfigFile looks for a config file in the OS config dir,
// then the home directory.
func findUserConfigFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "plandash", "plandash.toml")
		if fileExists(path) {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".plandash.toml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfigFile looks for a config file in the working
// directory.
func findProjectConfigFile() string {
	for _, name := range []string{"plandash.toml", ".plandash.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

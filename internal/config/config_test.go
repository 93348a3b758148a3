package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back to %s: %v", old, err)
		}
	})
}

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("plandash-test", flag.ContinueOnError)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newTestFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.TasksFile) != DefaultTasksFile {
		t.Errorf("tasks file = %s, want default %s", cfg.TasksFile, DefaultTasksFile)
	}
	if filepath.Base(cfg.MilestonesFile) != DefaultMilestonesFile {
		t.Errorf("milestones file = %s", cfg.MilestonesFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("log level = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if !filepath.IsAbs(cfg.OutputFile) {
		t.Errorf("output file not anchored: %s", cfg.OutputFile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PLANDASH_TASKS", "alt-tasks.md")
	t.Setenv("PLANDASH_LOG_LEVEL", "debug")

	cfg, err := Load(newTestFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.TasksFile) != "alt-tasks.md" {
		t.Errorf("tasks file = %s, want env override", cfg.TasksFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %s, want debug", cfg.LogLevel)
	}
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	t.Setenv("PLANDASH_OUT", "env-out/index.html")

	cfg, err := Load(newTestFlagSet(), []string{"-out", "flag-out/index.html"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(filepath.Dir(cfg.OutputFile)) != "flag-out" {
		t.Errorf("output file = %s, want flag to win over env", cfg.OutputFile)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "tasks_file = \"custom/tasks.md\"\ntitle = \"Custom Board\"\n"
	if err := os.WriteFile(filepath.Join(dir, "plandash.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load(newTestFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "Custom Board" {
		t.Errorf("title = %q, want from project file", cfg.Title)
	}
	if filepath.Base(filepath.Dir(cfg.TasksFile)) != "custom" {
		t.Errorf("tasks file = %s, want from project file", cfg.TasksFile)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandPath("~/plans/tasks.md"); got != filepath.Join(home, "plans", "tasks.md") {
		t.Errorf("expandPath = %s", got)
	}
	if got := expandPath("plain.md"); got != "plain.md" {
		t.Errorf("expandPath(plain) = %s", got)
	}
}

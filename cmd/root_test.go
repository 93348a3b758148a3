package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plandash/plandash/internal/config"
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

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	return &config.Config{
		TasksFile:      filepath.Join(dir, "tasks.md"),
		MilestonesFile: filepath.Join(dir, "milestones.md"),
		ProjectFile:    filepath.Join(dir, "project.txt"),
		OutputFile:     filepath.Join(dir, "dashboard", "index.html"),
		LogLevel:       "error",
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := Run(context.Background(), []string{"frobnicate"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %v", err)
	}
}

func TestRunBuildEndToEnd(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("tasks.md", "---\ntasks:\n  - title: One\n    status: done\n---\n")
	write("milestones.md", "---\nmilestones: []\n---\n")
	write("project.txt", "project:\n  name: Demo\n")
	chdir(t, dir)

	if err := Run(context.Background(), []string{"build"}); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "dashboard", "index.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "One") {
		t.Error("output missing task title")
	}
}

func TestRunBuildMissingInputs(t *testing.T) {
	chdir(t, t.TempDir())
	if err := Run(context.Background(), []string{"build"}); err == nil {
		t.Fatal("expected error when input files are missing")
	}
}

func TestDoctorCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tasks.md", "milestones.md", "project.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	chdir(t, dir)

	var buf bytes.Buffer
	cfg := testConfig(t, dir)
	if err := doctorCommand(cfg, &buf); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(buf.String(), "All input files present") {
		t.Errorf("doctor output: %q", buf.String())
	}
}

func TestDoctorCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	cfg := testConfig(t, dir)

	err := doctorCommand(cfg, &buf)
	if err == nil {
		t.Fatal("expected error for missing inputs")
	}
	if !strings.Contains(buf.String(), "MISSING") {
		t.Errorf("doctor output: %q", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := versionCommand(&buf); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(buf.String(), "plandash") {
		t.Errorf("version output: %q", buf.String())
	}
}

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "warn", Format: "text"})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line emitted at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewWithWriterBadLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "nope"})
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info fallback", logger.GetLevel())
	}
}

func TestNewWithWriterLogfmt(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "info", Format: "logfmt"})
	logger.Info("written", "tasks", 3)
	if !strings.Contains(buf.String(), "tasks=3") {
		t.Errorf("logfmt output missing field: %q", buf.String())
	}
}

// Package logging builds the console logger for progress output.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds console logger configuration.
type Options struct {
	Level      string
	Format     string
	Timestamps bool
}

// New creates a leveled console logger writing to stdout.
func New(opts Options) *log.Logger {
	return NewWithWriter(os.Stdout, opts)
}

// NewWithWriter creates a console logger writing to w. Unknown levels
// fall back to info, unknown formats to text.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       parseFormat(opts.Format),
		ReportTimestamp: opts.Timestamps,
		Prefix:          "plandash",
	})
}

func parseFormat(format string) log.Formatter {
	switch format {
	case "logfmt":
		return log.LogfmtFormatter
	case "json":
		return log.JSONFormatter
	default:
		return log.TextFormatter
	}
}

// Package cmd implements the CLI command structure for plandash.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plandash/plandash/internal/build"
	"github.com/plandash/plandash/internal/config"
	"github.com/plandash/plandash/internal/logging"
	"github.com/plandash/plandash/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the plandash CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plandash", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	// Default to "build" when no subcommand is given.
	subcommand := "build"
	remaining := fs.Args()
	if len(remaining) > 0 {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	switch subcommand {
	case "build":
		return buildCommand(cfg)
	case "tui":
		return ui.RunPreview(ctx, cfg)
	case "doctor":
		return doctorCommand(cfg, os.Stdout)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func buildCommand(cfg *config.Config) error {
	logger := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
	})
	return build.New(cfg, logger).Run()
}

// doctorCommand prints the resolved configuration and checks that the
// input files exist.
func doctorCommand(cfg *config.Config, w io.Writer) error {
	fmt.Fprintf(w, "plandash %s\n\n", Version)
	fmt.Fprintf(w, "Resolved configuration:\n")
	fmt.Fprintf(w, "  tasks:      %s\n", cfg.TasksFile)
	fmt.Fprintf(w, "  milestones: %s\n", cfg.MilestonesFile)
	fmt.Fprintf(w, "  project:    %s\n", cfg.ProjectFile)
	fmt.Fprintf(w, "  output:     %s\n", cfg.OutputFile)
	fmt.Fprintf(w, "  log:        %s/%s\n\n", cfg.LogLevel, cfg.LogFormat)

	missing := 0
	for _, path := range []string{cfg.TasksFile, cfg.MilestonesFile, cfg.ProjectFile} {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(w, "  MISSING  %s\n", path)
			missing++
		} else {
			fmt.Fprintf(w, "  ok       %s\n", path)
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d input file(s) missing", missing)
	}
	fmt.Fprintf(w, "\nAll input files present.\n")
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "plandash %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `plandash - static HTML dashboard from plain-text planning files

Usage:
  plandash [flags] [command]

Commands:
  build     Generate the dashboard (default)
  tui       Read-only terminal preview of the dashboard views
  doctor    Print resolved configuration and check input files
  version   Show version
  help      Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

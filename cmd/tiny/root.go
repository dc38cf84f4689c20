package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/tiny/internal/app"
	"github.com/dshills/tiny/internal/config"
	"github.com/dshills/tiny/internal/logging"
)

var (
	// errMissingFile is returned when no file argument is given.
	errMissingFile = errors.New("missing file argument")

	// errNoTerminal is returned when stdout cannot be drawn on.
	errNoTerminal = errors.New("standard output is not a terminal")
)

type rootFlags struct {
	configFile string
	tabStop    int
	backend    string
	syntax     string
	logFile    string
	logLevel   string
	noWatch    bool
}

// flagPaths maps flag names to the configuration path they override.
var flagPaths = map[string]string{
	"tab-stop":  "editor.tab_stop",
	"backend":   "terminal.backend",
	"syntax":    "syntax.engine",
	"log-file":  "log.file",
	"log-level": "log.level",
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "tiny <path>",
		Short: "A small terminal text editor",
		Long: `tiny edits a single text file in the terminal.

Keys: Ctrl-S save, Ctrl-Q quit, Ctrl-F find.`,
		Args:          fileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), args[0], flags, overrides(cmd, flags))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "configuration file (TOML or YAML)")
	f.IntVar(&flags.tabStop, "tab-stop", 0, "tab expansion width")
	f.StringVar(&flags.backend, "backend", "", "terminal backend (ansi, tcell)")
	f.StringVar(&flags.syntax, "syntax", "", "highlighting engine (builtin, chroma, none)")
	f.StringVar(&flags.logFile, "log-file", "", "append diagnostics to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVar(&flags.noWatch, "no-watch", false, "do not watch the file for external changes")

	return cmd
}

func fileArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errMissingFile
	case 1:
		return nil
	default:
		return fmt.Errorf("expected one file argument, got %d", len(args))
	}
}

// overrides collects the configuration paths set explicitly on the
// command line.
func overrides(cmd *cobra.Command, flags rootFlags) map[string]any {
	values := map[string]any{
		"tab-stop":  flags.tabStop,
		"backend":   flags.backend,
		"syntax":    flags.syntax,
		"log-file":  flags.logFile,
		"log-level": flags.logLevel,
	}
	out := make(map[string]any)
	for name, path := range flagPaths {
		if cmd.Flags().Changed(name) {
			out[path] = values[name]
		}
	}
	if flags.noWatch {
		out["editor.watch_file"] = false
	}
	return out
}

func runEditor(ctx context.Context, path string, flags rootFlags, over map[string]any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	cfg, err := config.Load(config.Options{File: flags.configFile, Overrides: over})
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer closer.Close()

	ed, err := app.New(app.Options{Path: path, Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return ed.Run(ctx)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

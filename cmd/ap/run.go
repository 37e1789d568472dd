package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draeician/ap/internal/config"
	"github.com/draeician/ap/internal/tool"
	"github.com/draeician/ap/pkg/parsley"
)

const separator = "----------------------------------------------------------------"

// app holds everything one invocation needs. It exists so the orchestration
// can be driven by tests with a fake runner and an in-memory writer.
type app struct {
	runner tool.Runner
	binary string
	opts   parsley.Options
	dryRun bool
	// bare is true when the program was invoked with no arguments at all;
	// an empty work set then prints help instead of a message.
	bare   bool
	out    io.Writer
	logger *slog.Logger
	help   func() error
}

func runRoot(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger := newLogger(cfg.LogLevel)

	opts, err := gatherOptions()
	if err != nil {
		return err
	}
	if cfg.Defaults.DeepScan {
		opts.DeepScan = true
	}

	a := &app{
		runner: tool.New(cfg.Command, os.Stdout, os.Stderr, logger),
		binary: cfg.Command,
		opts:   opts,
		dryRun: dryRun,
		bare:   len(os.Args) <= 1,
		out:    os.Stdout,
		logger: logger,
		help:   cmd.Help,
	}
	return a.run(cmd.Context(), args)
}

func (a *app) run(ctx context.Context, files []string) error {
	if err := a.runner.Probe(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return errReported
	}

	var valid []string
	for _, f := range files {
		if parsley.IsProcessable(f) {
			valid = append(valid, f)
			continue
		}
		fmt.Fprintf(a.out, "Note: %s is of an invalid type and will be ignored.\n", f)
	}

	if len(valid) == 0 {
		if a.bare {
			if err := a.help(); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(a.out, "Nothing to process.")
		}
		return errReported
	}

	mode := parsley.DetermineMode(a.opts)
	a.logger.Debug("processing", "mode", mode.String(), "files", len(valid))

	var mirror parsley.Record
	if mode == parsley.ModeModify && a.opts.Mirror != "" && parsley.IsProcessable(a.opts.Mirror) {
		mirror = tool.Extract(ctx, a.runner, a.opts.Mirror, a.logger)
	}

	for _, f := range valid {
		fmt.Fprintln(a.out, "File:", f)
		fmt.Fprintln(a.out, separator)

		if mode == parsley.ModeView && !a.opts.RawView {
			a.viewFile(ctx, f)
		} else {
			a.runFile(ctx, f, mode, mirror)
		}

		if len(valid) > 1 {
			fmt.Fprintln(a.out)
		}
	}
	return nil
}

// viewFile prints the friendly metadata summary, falling back to the raw
// dump when extraction yields nothing parseable.
func (a *app) viewFile(ctx context.Context, file string) {
	rec := tool.Extract(ctx, a.runner, file, a.logger)
	switch {
	case len(rec) == 0:
		a.runFile(ctx, file, parsley.ModeView, nil)
	case rec.Empty():
		fmt.Fprintln(a.out, "No metadata found.")
	default:
		for _, line := range rec.Summary() {
			fmt.Fprintln(a.out, line)
		}
	}
}

// runFile synthesizes and executes one AtomicParsley invocation. The
// external exit status is not adopted as our own.
func (a *app) runFile(ctx context.Context, file string, mode parsley.Mode, mirror parsley.Record) {
	args := parsley.BuildArgs(file, mode, a.opts, mirror)
	if len(args) == 0 {
		fmt.Fprintln(a.out, "No valid command to execute.")
		return
	}
	if a.dryRun {
		fmt.Fprintln(a.out, a.binary+" "+strings.Join(args, " "))
		return
	}
	if err := a.runner.Run(ctx, args); err != nil {
		a.logger.Debug("external command failed", "file", file, "err", err)
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package tool runs the external AtomicParsley binary.
package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/draeician/ap/pkg/parsley"
)

// ErrNotFound reports that the binary could not be located or did not answer
// a version query.
var ErrNotFound = errors.New("not installed or not in PATH")

// Runner abstracts the external binary for the command layer. Calls block
// until the binary exits and apply no deadline of their own; cancel through
// ctx if a hung binary must not stall the run.
type Runner interface {
	// Probe checks the binary answers a version query.
	Probe(ctx context.Context) error
	// Dump runs the read-only metadata dump and captures its stdout.
	Dump(ctx context.Context, file string) (string, error)
	// Run executes the binary with args, forwarding output to the user.
	Run(ctx context.Context, args []string) error
}

// Tool is the Runner backed by a concrete binary on disk.
type Tool struct {
	path   string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// New creates a Tool for the binary at path. Run output goes to stdout and
// stderr.
func New(path string, stdout, stderr io.Writer, logger *slog.Logger) *Tool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tool{path: path, stdout: stdout, stderr: stderr, logger: logger}
}

func (t *Tool) Probe(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, t.path, "--version")
	if err := cmd.Run(); err != nil {
		t.logger.Debug("version probe failed", "path", t.path, "err", err)
		return fmt.Errorf("%s: %w", t.path, ErrNotFound)
	}
	return nil
}

func (t *Tool) Dump(ctx context.Context, file string) (string, error) {
	out, err := exec.CommandContext(ctx, t.path, file, "-t").Output()
	if err != nil {
		return "", fmt.Errorf("dump %s: %w", file, err)
	}
	return string(out), nil
}

// Run executes the binary with args. The binary's exit status is logged but
// not adopted as this process's own; AtomicParsley reports its failures on
// the forwarded stderr.
func (t *Tool) Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, t.path, args...)
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr
	if err := cmd.Run(); err != nil {
		t.logger.Debug("command failed", "args", args, "err", err)
		return err
	}
	return nil
}

// Extract dumps a file's metadata and parses it. Any failure degrades to an
// empty record: view mode then falls back to the raw dump, and mirroring
// simply copies nothing.
func Extract(ctx context.Context, r Runner, file string, logger *slog.Logger) parsley.Record {
	if logger == nil {
		logger = slog.Default()
	}
	out, err := r.Dump(ctx, file)
	if err != nil {
		logger.Debug("metadata extraction failed", "file", file, "err", err)
		return parsley.Record{}
	}
	return parsley.ParseDump(out)
}

package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"ccline/internal/logging"
	"ccline/internal/ports"
)

// ErrNoEditor is returned when no editor could be resolved
var ErrNoEditor = errors.New("no suitable editor found")

var _ ports.EditorOpener = (*Opener)(nil)

// Opener runs a terminal editor attached to the given streams
type Opener struct {
	stderr   io.Writer
	stdin    io.Reader
	stdout   io.Writer
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener(stdin io.Reader, stdout, stderr io.Writer) *Opener {
	return &Opener{
		stderr:   stderr,
		stdin:    stdin,
		stdout:   stdout,
		lookPath: exec.LookPath,
	}
}

// Open edits path and waits for the editor to exit.
// Priority: cliEditor → $CCLINE_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(ctx context.Context, path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	name, args := o.findEditor(cliEditor)
	if name == "" {
		return fmt.Errorf("%w: set --editor, $CCLINE_EDITOR, $VISUAL, or $EDITOR", ErrNoEditor)
	}

	logging.Logger.Info("Opening editor", "editor", name, "path", path)

	cmd := exec.CommandContext(ctx, name, append(args, path)...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", name, err)
	}
	return nil
}

// findEditor returns the editor binary and its leading arguments.
// Values like "code --wait" are split on whitespace.
func (o *Opener) findEditor(cliEditor string) (string, []string) {
	candidates := []string{
		cliEditor,
		os.Getenv("CCLINE_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	}
	for _, c := range candidates {
		if fields := strings.Fields(c); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	for _, name := range defaultEditors {
		if _, err := o.lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

package cmd

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	adapterclaude "ccline/internal/adapters/claude"
	adaptereditor "ccline/internal/adapters/editor"
	adaptergit "ccline/internal/adapters/git"
	adapternewapi "ccline/internal/adapters/newapi"
	"ccline/internal/config"
	"ccline/internal/ports"
	"ccline/internal/segments"
	"ccline/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ConfigStore       *config.Store
	Editor            ports.EditorOpener
	StatusLineService *services.StatusLineService

	// Streams
	Stderr io.Writer
	Stdin  io.Reader
	Stdout io.Writer

	// IsTerminal reports whether stdin is an interactive terminal
	IsTerminal func() bool
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	store := config.NewStore(config.GetConfigPath())

	factory := &segments.Factory{
		Git:         adaptergit.NewCLIRepository(),
		Now:         time.Now,
		Options:     store,
		Stats:       adapternewapi.NewClient(),
		Transcripts: adapterclaude.NewTranscriptParser(),
	}

	return &Container{
		ConfigStore:       store,
		Editor:            adaptereditor.NewOpener(os.Stdin, os.Stdout, os.Stderr),
		StatusLineService: services.NewStatusLineService(factory),
		Stderr:            os.Stderr,
		Stdin:             os.Stdin,
		Stdout:            os.Stdout,
		IsTerminal:        stdinIsTerminal,
	}, nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

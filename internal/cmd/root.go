package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"ccline/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Render RenderCmd `cmd:"" help:"Render the status line from session JSON on stdin (default)" default:"1"`
	Config ConfigCmd `cmd:"config" help:"Manage the configuration file (init, print, check, edit, meta, themes)"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires dependencies
func (c *CLI) AfterApply() error {
	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// git subprocesses don't log, but keep the settings visible to anything we spawn
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CCLINE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CCLINE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("CCLINE_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"followup/internal/config"
	"followup/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Serve  ServeCmd  `cmd:"" help:"Serve the follow-up tools over MCP stdio (default)" default:"1"`
	Ask    AskCmd    `cmd:"ask" help:"Ask a one-off question in a terminal window"`
	Prompt PromptCmd `cmd:"prompt" help:"Run the interactive prompt for a launched question" hidden:""`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
	version   string     `kong:"-"`
}

// SetVersion records the build version before parsing
func (c *CLI) SetVersion(v string) {
	c.version = v
}

// AfterApply initializes logging after CLI parsing and wires dependencies
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so spawned prompt
	// sessions inherit debug settings and append to the SAME log file
	// (important for correlating parent/child process logs)
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FOLLOWUP_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FOLLOWUP_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FOLLOWUP_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	c.Container = NewContainer(settings)

	return nil
}

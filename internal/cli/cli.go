// Package cli implements the tide command-line interface.
//
// The CLI wraps the toolkit for day-to-day work: scaffolding a new
// application, previewing the component page with a theme applied, and
// printing build information.
//
// # Commands
//
//   - init: scaffold a tide application (go.mod, tide.yaml, main.go)
//   - preview: render the component preview page to stdout or serve it
//   - version: print version information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. While a
// command runs, toolkit warnings and reported errors are routed to the CLI
// logger, so configuration fallbacks show up in the command output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tideerrors "github.com/go-tide/tide/pkg/errors"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the build information displayed by the version command.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "tide",
		Short:        "Tide scaffolds and previews themed UI components",
		Long:         `Tide is the command-line companion to the tide component toolkit. It scaffolds new applications, renders the component preview page with a theme applied, and serves the preview over HTTP with live configuration reload.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			tideerrors.SetHandler(&logBridge{logger: c.Logger})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.initCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.versionCommand())

	return root
}

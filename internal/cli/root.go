// Package cli implements the cableviz command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/econum/cableviz/internal/config"
	"github.com/econum/cableviz/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// NewRootCmd creates the root Cobra command for the cableviz CLI. It loads
// the configuration, sets up logging and a trace id before every
// subcommand, and registers render, view, history and config.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "cableviz",
		Short:   "Terminal views of cable temperature predictions",
		Long:    "cableviz renders cable temperature predictions and their energy and carbon footprint in the terminal.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "configuration file (default $CABLEVIZ_HOME/config.yaml)")
	cmd.AddCommand(newRenderCmd(), newViewCmd(), newHistoryCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Render a prediction result
  cableviz render prediction.json

  # Render from stdin and record the run
  curl -s localhost:8000/predict | cableviz render --record

  # Browse a result interactively
  cableviz view prediction.json

  # Show recorded runs
  cableviz history list --limit 5

  # Write the default configuration
  cableviz config init`

// skipConfigLoad marks commands that run without loading the configuration.
const skipConfigLoad = "cableviz/skip-config-load"

// loadConfig loads the configuration named by --config, or the global and
// project files, and installs it as the global configuration.
func loadConfig(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigLoad] != "" {
		config.SetGlobalConfig(config.New())
		return nil
	}
	path, _ := cmd.Flags().GetString("config")

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, err := config.Load(config.LoadOptions{
		Path:        path,
		ProjectFile: config.ResolveProjectFile(cmd.Context(), wd),
	})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

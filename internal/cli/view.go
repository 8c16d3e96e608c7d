package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/econum/cableviz/internal/config"
	"github.com/econum/cableviz/internal/tui"
)

// programRunner starts the interactive program; tests replace it.
//
//nolint:gochecknoglobals // Test seam.
var programRunner = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

func newViewCmd() *cobra.Command {
	var flags displayFlags

	cmd := &cobra.Command{
		Use:   "view [FILE]",
		Short: "Browse a prediction result interactively",
		Long: `Opens an interactive view of one prediction result, read from FILE or stdin.

Keys: tab switches graph and table, 1/2/3 select the summary, energy and
hardware views, d toggles the details and q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()

			opts, err := reportOptions(cmd, cfg, flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			predictions, err := loadPredictions(ctx, cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			model := tui.NewModel(tui.BuildReport(ctx, predictions[0], opts))
			programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())}
			if len(args) == 0 || args[0] == stdinPath {
				// Stdin carried the document; keys come from the terminal.
				programOpts = append(programOpts, tea.WithInputTTY())
			} else {
				programOpts = append(programOpts, tea.WithInput(cmd.InOrStdin()))
			}
			_, err = programRunner(model, programOpts...)
			return err
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/econum/cableviz/internal/config"
	"github.com/econum/cableviz/internal/history"
	"github.com/econum/cableviz/internal/units"
)

const (
	tabPadding       = 2
	historyTimestamp = "2006-01-02 15:04:05"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
	}
	cmd.AddCommand(newHistoryListCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openHistory(ctx, config.GetGlobalConfig())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No recorded runs.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "ID\tRECORDED\tSOURCE\tSAMPLES\tPEAK\tSTATUS\tEMISSIONS\tBAND")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.RecordedAt.Local().Format(historyTimestamp),
					e.Source,
					e.Samples,
					units.FormatTemperature(e.PeakCelsius, units.MaxTemperatureDecimals),
					e.Status,
					units.FormatEmissions(e.EmissionsKg, units.ModeCompact),
					dash(e.Band),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", history.DefaultLimit, "maximum number of runs to list")
	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

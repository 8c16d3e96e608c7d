package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/econum/cableviz/internal/config"
	"github.com/econum/cableviz/internal/history"
	"github.com/econum/cableviz/internal/ingest"
	"github.com/econum/cableviz/internal/logging"
	"github.com/econum/cableviz/internal/observability"
	"github.com/econum/cableviz/internal/tui"
)

// stdinPath names standard input in file arguments.
const stdinPath = "-"

// statusNone labels runs without a finite temperature in metrics and history.
const statusNone = "none"

type renderFlags struct {
	displayFlags
	record          bool
	metricsTextfile string
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [FILE...]",
		Short: "Print the report of one or more prediction results",
		Long: `Reads prediction results from files, or from stdin when no file or "-" is
given, and prints for each one the temperature chart, the peak temperature
gauge, the carbon footprint card and the energy breakdown.`,
		Example: `  # Render a file
  cableviz render prediction.json

  # Render stdin with the energy details and record the run
  cableviz render --view energy --record < prediction.json

  # Export counters for the node_exporter textfile collector
  cableviz render --metrics-textfile /var/lib/node_exporter/cableviz.prom *.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&flags.record, "record", false, "record each run in the history database")
	cmd.Flags().StringVar(&flags.metricsTextfile, "metrics-textfile", "",
		"write Prometheus counters to this file (default: metrics.textfile)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags renderFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	out := cmd.OutOrStdout()

	opts, err := reportOptions(cmd, cfg, flags.displayFlags, out)
	if err != nil {
		return err
	}

	predictions, err := loadPredictions(ctx, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var store *history.Store
	if flags.record || cfg.History.Enabled {
		store, err = openHistory(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	metrics := observability.New()
	for i, p := range predictions {
		start := time.Now()
		report := tui.BuildReport(ctx, p, opts)
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, report.Render())
		observe(metrics, report, time.Since(start))

		if store != nil {
			id, err := store.Record(ctx, historyEntry(ctx, report))
			if err != nil {
				return fmt.Errorf("recording %s: %w", sourceName(p), err)
			}
			logger.Debug().Ctx(ctx).
				Str("operation", "render").
				Str("history_id", id).
				Msg("run recorded")
		}
	}

	textfile := cfg.Metrics.Textfile
	if flags.metricsTextfile != "" {
		textfile = flags.metricsTextfile
	}
	if textfile != "" {
		if err := metrics.WriteTextfile(textfile); err != nil {
			return err
		}
	}
	return nil
}

// loadPredictions reads every path, "-" meaning r. Files are read
// concurrently; the result keeps the argument order.
func loadPredictions(ctx context.Context, r io.Reader, paths []string) ([]*ingest.Prediction, error) {
	if len(paths) == 0 {
		paths = []string{stdinPath}
	}

	var files []string
	var stdinAt []int
	for i, p := range paths {
		if p == stdinPath {
			stdinAt = append(stdinAt, i)
		} else {
			files = append(files, p)
		}
	}
	if len(stdinAt) > 1 {
		return nil, fmt.Errorf("stdin given %d times: %w", len(stdinAt), ingest.ErrInvalidPrediction)
	}

	loaded, err := ingest.LoadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	out := make([]*ingest.Prediction, 0, len(paths))
	next := 0
	for i := range paths {
		if len(stdinAt) == 1 && stdinAt[0] == i {
			p, err := ingest.Decode(ctx, r)
			if err != nil {
				return nil, fmt.Errorf("stdin: %w", err)
			}
			p.Source = stdinPath
			out = append(out, p)
			continue
		}
		out = append(out, loaded[next])
		next++
	}
	return out, nil
}

func openHistory(ctx context.Context, cfg *config.Config) (*history.Store, error) {
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("creating configuration directory: %w", err)
	}
	return history.Open(ctx, path, logging.ComponentLogger(logger, "history"))
}

func observe(m *observability.Metrics, r *tui.Report, took time.Duration) {
	band := ""
	if r.HasEmissions {
		band = r.Band.Label
	}
	m.ObserveRender(reportStatus(r), band, r.Peak, took)
	if r.ChartErr != nil {
		m.ChartError()
	}
	if !r.GaugeDrawn && r.GaugeErr == nil {
		m.GaugeSkipped()
	}
}

func historyEntry(ctx context.Context, r *tui.Report) history.Entry {
	e := history.Entry{
		RecordedAt:  time.Now().UTC(),
		Source:      sourceName(r.Prediction),
		Samples:     len(r.Prediction.Temperatures),
		PeakCelsius: r.Peak,
		Status:      reportStatus(r),
		EmissionsKg: r.EmissionsKg(),
		TraceID:     logging.TraceIDFromContext(ctx),
	}
	if r.HasEmissions {
		e.Band = r.Band.Label
		e.Provenance = r.Emissions.Provenance.String()
	}
	return e
}

func reportStatus(r *tui.Report) string {
	if !r.HasPeak {
		return statusNone
	}
	return r.Status.String()
}

func sourceName(p *ingest.Prediction) string {
	if p.Source == "" {
		return stdinPath
	}
	return p.Source
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/econum/cableviz/internal/chart"
	"github.com/econum/cableviz/internal/config"
	"github.com/econum/cableviz/internal/energy"
	"github.com/econum/cableviz/internal/tui"
)

// displayFlags are the report flags shared by render and view.
type displayFlags struct {
	width   int
	policy  string
	view    string
	noColor bool
}

func (f *displayFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.width, "width", 0, "report width in columns (default: terminal width or display.width)")
	fs.StringVar(&f.policy, "policy", "",
		"time axis policy: minutes-label, floor-label or prelabeled-minutes (default: from the result)")
	fs.StringVar(&f.view, "view", "", "detail view: summary, energy or hardware (default: display.view)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colours in the gauge and charts")
}

// reportOptions merges the configuration with the flags of cmd.
func reportOptions(cmd *cobra.Command, cfg *config.Config, f displayFlags, out io.Writer) (tui.Options, error) {
	opts := tui.DefaultOptions()

	// The report fits both the terminal and display.width; 0 in the
	// configuration means the terminal width.
	opts.Width = cfg.Display.Width
	if tw := terminalWidth(out); tw > 0 && (opts.Width == 0 || tw < opts.Width) {
		opts.Width = tw
	}
	if cmd.Flags().Changed("width") && f.width > 0 {
		opts.Width = f.width
	}
	opts.Decimals = cfg.Display.Decimals

	viewName := cfg.Display.View
	if f.view != "" {
		viewName = f.view
	}
	view, err := energy.ParseView(viewName)
	if err != nil {
		return opts, err
	}
	opts.View = view

	defaultPolicy, err := chart.ParsePolicy(cfg.Chart.Policy)
	if err != nil {
		return opts, err
	}
	opts.DefaultPolicy = defaultPolicy
	if f.policy != "" {
		policy, err := chart.ParsePolicy(f.policy)
		if err != nil {
			return opts, err
		}
		opts.Policy = &policy
	}

	spec, err := cfg.GaugeSpec()
	if err != nil {
		return opts, fmt.Errorf("gauge: %w", err)
	}
	opts.Gauge = spec
	classifier, err := cfg.TemperatureClassifier()
	if err != nil {
		return opts, fmt.Errorf("thresholds: %w", err)
	}
	opts.Classifier = classifier
	opts.GaugeCols = cfg.Gauge.Cols
	opts.GaugeRows = cfg.Gauge.Rows
	opts.ChartHeight = cfg.Chart.Height
	opts.Color = cfg.Display.Color && !f.noColor && isTerminal(out)

	return opts, nil
}

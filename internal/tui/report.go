package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/econum/cableviz/internal/chart"
	"github.com/econum/cableviz/internal/energy"
	"github.com/econum/cableviz/internal/gauge"
	"github.com/econum/cableviz/internal/impact"
	"github.com/econum/cableviz/internal/ingest"
	"github.com/econum/cableviz/internal/logging"
	"github.com/econum/cableviz/internal/units"
)

// Default report dimensions.
const (
	DefaultWidth       = 80
	DefaultChartHeight = 8
	DefaultGaugeCols   = 60
	DefaultGaugeRows   = 15

	executionDecimals = 4
)

// Options controls how a prediction is turned into a report.
type Options struct {
	Width    int
	Decimals int
	View     energy.View

	// DefaultPolicy applies to predictions without a timestamp_unit hint.
	// Policy, when set, overrides both.
	DefaultPolicy chart.AxisPolicy
	Policy        *chart.AxisPolicy

	Gauge      gauge.Spec
	Classifier *impact.TemperatureClassifier
	GaugeCols  int
	GaugeRows  int

	ChartHeight int
	Color       bool

	Resolver energy.Resolver
}

// DefaultOptions returns the options used without configuration.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Decimals:    energy.DefaultDecimals,
		View:        energy.ViewSummary,
		Gauge:       gauge.DefaultSpec(),
		Classifier:  impact.DefaultTemperatureClassifier(),
		GaugeCols:   DefaultGaugeCols,
		GaugeRows:   DefaultGaugeRows,
		ChartHeight: DefaultChartHeight,
		Color:       true,
	}
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Decimals <= 0 {
		o.Decimals = energy.DefaultDecimals
	}
	if o.Gauge.DomainMax == 0 {
		o.Gauge = gauge.DefaultSpec()
	}
	if o.Classifier == nil {
		o.Classifier = impact.DefaultTemperatureClassifier()
	}
	if o.GaugeCols <= 0 {
		o.GaugeCols = DefaultGaugeCols
	}
	if o.GaugeRows <= 0 {
		o.GaugeRows = DefaultGaugeRows
	}
	if o.ChartHeight <= 0 {
		o.ChartHeight = DefaultChartHeight
	}
	return o
}

// Report is a prediction run through the visualisation core.
type Report struct {
	Prediction *ingest.Prediction

	Peak    float64
	Final   float64
	Status  impact.TemperatureStatus
	HasPeak bool

	Series   chart.Series
	Table    chart.Series
	ChartErr error

	Emissions    energy.Emissions
	HasEmissions bool
	Band         impact.SeverityBand
	Breakdown    energy.Breakdown

	Gauge      gauge.Plan
	GaugeArt   string
	GaugeDrawn bool
	GaugeErr   error

	opts Options
}

// BuildReport runs p through the core. It does not fail on data problems:
// an unusable series is kept in ChartErr and a missing emissions block
// leaves HasEmissions false.
func BuildReport(ctx context.Context, p *ingest.Prediction, opts Options) *Report {
	opts = opts.normalized()
	log := logging.FromContext(ctx)
	if p == nil {
		p = &ingest.Prediction{}
	}

	r := &Report{Prediction: p, Final: math.NaN(), opts: opts}
	r.Peak, r.Status, r.HasPeak = opts.Classifier.PeakStatus(p.Temperatures)
	if !r.HasPeak {
		r.Peak = math.NaN()
	}
	if n := len(p.Temperatures); n > 0 {
		r.Final = p.Temperatures[n-1]
	}

	policy := opts.DefaultPolicy
	if p.TimestampUnit != "" {
		policy = p.ChartPolicy()
	}
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	series, err := chart.Adapt(p.Timestamps, p.Temperatures, policy)
	if err != nil {
		r.ChartErr = err
		log.Warn().Ctx(ctx).
			Str("component", "tui").
			Str("operation", "build_report").
			Err(err).
			Msg("temperature series rejected")
	} else {
		r.Series = series.WithStyle(chart.TemperatureStyle)
		r.Table, _ = chart.Adapt(p.Timestamps, p.Temperatures, chart.PolicyFloorLabel)
	}

	if e, ok := opts.Resolver.Resolve(p.EmissionsInput(), p.ExecutionTimeSeconds); ok {
		r.Emissions = e
		r.HasEmissions = true
		r.Band = impact.Classify(e.Record.Emissions)
		r.Breakdown = energy.NewBreakdown(e.Record)
	}

	gv, err := newGaugeView(opts.GaugeCols, opts.GaugeRows, opts.Gauge, opts.Classifier,
		logging.ComponentLogger(*log, "gauge"))
	if err != nil {
		r.GaugeErr = err
	} else {
		r.Gauge, r.GaugeArt, r.GaugeDrawn = gv.draw(r.Peak, opts.Color)
		gv.close()
	}

	log.Debug().Ctx(ctx).
		Str("component", "tui").
		Str("operation", "build_report").
		Str("source", p.Source).
		Int("samples", len(p.Temperatures)).
		Bool("emissions", r.HasEmissions).
		Bool("gauge_drawn", r.GaugeDrawn).
		Msg("report built")

	return r
}

// RenderReport builds and renders the static report of p.
func RenderReport(ctx context.Context, p *ingest.Prediction, opts Options) string {
	return BuildReport(ctx, p, opts).Render()
}

// Options returns the options the report was built with.
func (r *Report) Options() Options { return r.opts }

// Render returns the full static report.
func (r *Report) Render() string {
	sections := []string{
		r.RenderHeader(),
		r.RenderChart(),
		r.RenderGauge(),
		r.RenderEmissions(),
	}
	if r.HasEmissions {
		sections = append(sections,
			RenderBreakdown(r.Breakdown, r.opts.Width, r.opts.Decimals),
			r.RenderFields(r.opts.View))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// RenderHeader renders the title, the peak badge and the run statistics.
func (r *Report) RenderHeader() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Résultats"))
	if r.Prediction.Source != "" && r.Prediction.Source != "-" {
		b.WriteString(" ")
		b.WriteString(LabelStyle.Render(r.Prediction.Source))
	}
	if r.HasPeak {
		b.WriteString("  ")
		b.WriteString(BadgeStyle(StatusColor(r.Status)).Render(PeakBadge(r.Peak)))
	}
	b.WriteString("\n")

	stats := []string{
		stat("Temps d'exécution", units.FormatFloat(r.Prediction.ExecutionTimeSeconds, executionDecimals)+" s"),
		stat("Température maximale", units.FormatTemperature(r.Peak, units.MaxTemperatureDecimals)),
		stat("Température finale", units.FormatTemperature(r.Final, units.MaxTemperatureDecimals)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	return b.String()
}

// PeakBadge returns the "95.00°C Max" badge text.
func PeakBadge(peak float64) string {
	return units.FormatTemperature(peak, units.MaxTemperatureDecimals) + " Max"
}

func stat(label, value string) string {
	return BoxStyle.Render(LabelStyle.Render(label) + "\n" + ValueStyle.Render(value))
}

// RenderChart renders the temperature chart or the reason it is missing.
func (r *Report) RenderChart() string {
	if r.ChartErr != nil {
		return WarnStyle.Render(fmt.Sprintf("Graphique indisponible : %v", r.ChartErr))
	}
	return RenderChart(r.Series, r.opts.Width, r.opts.ChartHeight, r.opts.Color)
}

// RenderGauge renders the peak temperature gauge.
func (r *Report) RenderGauge() string {
	switch {
	case r.GaugeErr != nil:
		return WarnStyle.Render(fmt.Sprintf("Jauge indisponible : %v", r.GaugeErr))
	case !r.GaugeDrawn:
		return InfoStyle.Render("Jauge indisponible.")
	default:
		return r.GaugeArt
	}
}

// RenderEmissions renders the carbon card, or a notice without emissions.
// The prediction note is shown in both cases.
func (r *Report) RenderEmissions() string {
	if !r.HasEmissions {
		notice := InfoStyle.Render("Aucune donnée d'émissions pour ce calcul.")
		if r.Prediction.Note != "" {
			notice += "\n" + InfoStyle.Render(r.Prediction.Note)
		}
		return notice
	}
	return RenderEmissionsCard(r.Emissions, r.Prediction.Note, r.opts.Width)
}

// RenderFields renders the tab selector and the fields of view.
func (r *Report) RenderFields(view energy.View) string {
	if !r.HasEmissions {
		return ""
	}
	return RenderViewTabs(view) + "\n" +
		RenderFields(energy.Fields(r.Emissions, view, r.opts.Decimals))
}

// TableTitle is the header of the time column of the table.
func (r *Report) TableTitle() string {
	return timeColumnTitle(r.Prediction.TimestampUnit)
}

// EmissionsKg returns the emissions mass, NaN without emissions.
func (r *Report) EmissionsKg() float64 {
	if !r.HasEmissions {
		return math.NaN()
	}
	return r.Emissions.Record.Emissions
}

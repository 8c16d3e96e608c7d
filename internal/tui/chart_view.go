package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/econum/cableviz/internal/canvas"
	"github.com/econum/cableviz/internal/chart"
	"github.com/econum/cableviz/internal/units"
)

const (
	axisGutter   = 9
	minChartCols = 10
	minChartRows = 2
	minTableRows = 3

	timeColumnWidth  = 14
	valueColumnWidth = 18
)

// RenderChart draws s as a braille line chart cols cells wide and rows
// cells high, with the value range on the left and the first, middle and
// last labels under the axis. Non-finite values break the line.
func RenderChart(s chart.Series, cols, rows int, colorize bool) string {
	lo, hi, ok := s.Bounds()
	if !ok {
		return InfoStyle.Render("Aucune donnée de température.")
	}
	plotCols := max(cols-axisGutter, minChartCols)
	rows = max(rows, minChartRows)

	raster := canvas.NewRaster(plotCols, rows, 0, 0)
	w, h := raster.Size()
	n := s.Len()
	x := func(i int) float64 {
		if n == 1 {
			return w / 2
		}
		return float64(i) * (w - 1) / float64(n-1)
	}
	y := func(v float64) float64 {
		if hi == lo {
			return h / 2
		}
		return (hi - v) / (hi - lo) * (h - 1)
	}

	prev := -1
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			prev = -1
			continue
		}
		if prev < 0 {
			raster.Line(x(i), y(v), x(i), y(v), 1, s.Style.LineColor)
		} else {
			raster.Line(x(prev), y(s.Values[prev]), x(i), y(v), 1, s.Style.LineColor)
		}
		prev = i
	}

	var b strings.Builder
	if s.Style.Name != "" {
		b.WriteString(HeaderStyle.Render(s.Style.Name))
		b.WriteString("\n")
	}
	for row, line := range strings.Split(raster.Render(colorize), "\n") {
		label := ""
		switch row {
		case 0:
			label = axisValue(s, hi)
		case rows - 1:
			label = axisValue(s, lo)
		}
		fmt.Fprintf(&b, "%*s │%s\n", axisGutter-2, label, line)
	}
	b.WriteString(strings.Repeat(" ", axisGutter-1))
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", plotCols))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", axisGutter))
	b.WriteString(LabelStyle.Render(axisLabels(s.Labels, plotCols)))
	if s.Style.XTitle != "" {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", axisGutter))
		b.WriteString(InfoStyle.Render(s.Style.XTitle))
	}
	return b.String()
}

func axisValue(s chart.Series, v float64) string {
	if s.Style.Domain == units.DomainTemperature {
		return units.FormatTemperature(v, units.MinTemperatureDecimals)
	}
	return units.Format(v, s.Style.Domain, units.CompactDecimals)
}

// axisLabels lays the first, middle and last labels over cols cells.
func axisLabels(labels []string, cols int) string {
	line := []rune(strings.Repeat(" ", cols))
	put := func(label string, at int) {
		r := []rune(label)
		at = min(max(at, 0), max(cols-len(r), 0))
		for i, c := range r {
			if at+i < cols {
				line[at+i] = c
			}
		}
	}
	switch n := len(labels); {
	case n == 0:
	case n == 1:
		put(labels[0], 0)
	default:
		put(labels[0], 0)
		if n > 2 {
			mid := labels[n/2]
			put(mid, cols/2-len([]rune(mid))/2)
		}
		put(labels[n-1], cols)
	}
	return strings.TrimRight(string(line), " ")
}

// NewSeriesTable returns a table of s with one row per point.
func NewSeriesTable(s chart.Series, timeTitle string, height int) table.Model {
	columns := []table.Column{
		{Title: timeTitle, Width: timeColumnWidth},
		{Title: "Température (°C)", Width: valueColumnWidth},
	}
	rows := make([]table.Row, 0, s.Len())
	for label, v := range s.Points() {
		rows = append(rows, table.Row{label, units.FormatFloat(v, units.MaxTemperatureDecimals)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, minTableRows)),
	)

	st := table.DefaultStyles()
	st.Header = TableHeaderStyle
	st.Selected = TableSelectedStyle
	t.SetStyles(st)
	return t
}

// timeColumnTitle names the time column after the unit of the timestamps.
func timeColumnTitle(unit string) string {
	if unit == "min" {
		return "Temps (min)"
	}
	return "Temps (ms)"
}

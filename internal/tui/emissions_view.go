package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/econum/cableviz/internal/energy"
	"github.com/econum/cableviz/internal/impact"
	"github.com/econum/cableviz/internal/units"
)

// Layout constants.
const (
	borderPadding = 4
	minBoxWidth   = 40
	labelColumn   = 14
)

// approximationNote is shown under cards built from a bare emissions mass.
const approximationNote = "Détails matériels et localisation estimés : seule la masse d'émissions a été mesurée."

//nolint:gochecknoglobals // Fixed lookup values.
var sourceColors = [3]lipgloss.Color{
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#a855f7"),
	lipgloss.Color("#22c55e"),
}

// RenderEmissionsCard renders the carbon footprint card: the band badge,
// the headline mass, the equivalent activity, an impact bar and the
// optional note.
func RenderEmissionsCard(e energy.Emissions, note string, width int) string {
	kg := e.Record.Emissions
	band := impact.Classify(kg)
	color := BandColor(band.Color)
	inner := innerWidth(width)
	cols := contentWidth(width)

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Empreinte Carbone"))
	content.WriteString("  ")
	content.WriteString(BadgeStyle(color).Render("Impact " + band.Label))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Estimation des émissions de CO₂ pour ce calcul"))
	content.WriteString("\n\n")

	content.WriteString(ValueStyle.Render(units.FormatEmissions(kg, units.ModeHeadline) + " CO₂"))
	content.WriteString("  ")
	content.WriteString(LabelStyle.Render(band.Equivalent))
	content.WriteString("\n")

	content.WriteString(progressBar(band.GaugePercentage, cols, color))
	content.WriteString("\n")
	content.WriteString(spread(LabelStyle.Render("Faible impact"), LabelStyle.Render("Impact élevé"), cols))

	if note != "" {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(note))
	}
	if e.Approximate() {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(approximationNote))
	}

	return BoxStyle.Width(inner).Render(content.String())
}

// RenderBreakdown renders one proportional bar per energy source.
func RenderBreakdown(b energy.Breakdown, width, decimals int) string {
	inner := innerWidth(width)
	barCols := max(contentWidth(width)-labelColumn-1, 1)

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Répartition énergétique"))
	content.WriteString("  ")
	content.WriteString(LabelStyle.Render("Total "))
	content.WriteString(ValueStyle.Render(units.Format(b.Total, units.DomainEnergy, decimals)))
	for i, s := range b.Shares {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(padRight(s.Label(), labelColumn)))
		content.WriteString(" ")
		filled := s.Width(barCols)
		content.WriteString(lipgloss.NewStyle().Foreground(sourceColors[i]).Render(strings.Repeat("█", filled)))
		content.WriteString(lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("░", barCols-filled)))
	}
	return BoxStyle.Width(inner).Render(content.String())
}

// RenderFields renders labelled values in two aligned columns.
func RenderFields(fields []energy.Field) string {
	if len(fields) == 0 {
		return InfoStyle.Render("Aucun détail disponible.")
	}
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = LabelStyle.Render(padRight(f.Label, labelWidth)) + "  " + ValueStyle.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}

// RenderViewTabs renders the summary/energy/hardware selector.
func RenderViewTabs(active energy.View) string {
	parts := make([]string, 0, len(energy.Views()))
	for i, v := range energy.Views() {
		label := string(rune('1'+i)) + " " + v.String()
		if v == active {
			parts = append(parts, ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// progressBar renders pct percent of cols cells.
func progressBar(pct, cols int, color lipgloss.Color) string {
	cols = max(cols, 1)
	filled := int(math.Round(float64(min(max(pct, 0), 100)) / 100 * float64(cols)))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorTrack).Render(strings.Repeat("░", cols-filled))
}

// spread places left and right at the two ends of a width cells line.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// innerWidth is the box width passed to lipgloss, padding included.
func innerWidth(width int) int {
	return max(width, minBoxWidth) - borderPadding
}

// contentWidth is the text width inside a box.
func contentWidth(width int) int {
	return innerWidth(width) - BoxStyle.GetHorizontalPadding()
}

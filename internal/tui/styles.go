// Package tui renders prediction results for the terminal: a static report
// built from lipgloss blocks and an interactive bubbletea model.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/econum/cableviz/internal/gauge"
	"github.com/econum/cableviz/internal/impact"
)

// Palette.
//
//nolint:gochecknoglobals // Shared style values.
var (
	ColorHeader   = lipgloss.Color("#ea580c")
	ColorLabel    = lipgloss.Color("#6b7280")
	ColorValue    = lipgloss.Color("#f9fafb")
	ColorBorder   = lipgloss.Color("#4b5563")
	ColorMuted    = lipgloss.Color("#9ca3af")
	ColorTrack    = lipgloss.Color(gauge.ColorBackground)
	ColorSafe     = lipgloss.Color(gauge.ColorSafe)
	ColorWarning  = lipgloss.Color(gauge.ColorWarning)
	ColorDanger   = lipgloss.Color(gauge.ColorDanger)
	ColorSelected = lipgloss.Color("#fed7aa")
)

// Text styles.
//
//nolint:gochecknoglobals // Shared style values.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorLabel)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(ColorHeader).Underline(true)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).
				BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1f2937")).
				Background(ColorSelected)
)

// bandColors maps emissions bands to colours, lowest first.
//
//nolint:gochecknoglobals // Fixed lookup values.
var bandColors = map[impact.ColorToken]lipgloss.Color{
	impact.ColorVeryLow:  lipgloss.Color("#22c55e"),
	impact.ColorLow:      lipgloss.Color("#84cc16"),
	impact.ColorModerate: lipgloss.Color("#eab308"),
	impact.ColorHigh:     lipgloss.Color("#f97316"),
	impact.ColorVeryHigh: lipgloss.Color("#ef4444"),
}

// BandColor returns the colour of an emissions band.
func BandColor(t impact.ColorToken) lipgloss.Color {
	if c, ok := bandColors[t]; ok {
		return c
	}
	return ColorMuted
}

// StatusColor returns the colour of a temperature status, matching the
// gauge stroke.
func StatusColor(s impact.TemperatureStatus) lipgloss.Color {
	return lipgloss.Color(gauge.StatusColor(s))
}

// BadgeStyle returns a pill style in the given colour.
func BadgeStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#111827")).Background(c)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/econum/cableviz/internal/energy"
)

// Tab is the panel showing the temperature series.
type Tab int

const (
	// TabGraph shows the line chart.
	TabGraph Tab = iota
	// TabTable shows one row per sample.
	TabTable
)

// String returns the French tab title.
func (t Tab) String() string {
	if t == TabTable {
		return "Tableau"
	}
	return "Graphique"
}

// ViewState represents the current state of the interactive view.
type ViewState int

const (
	// ViewStateBrowsing is the normal state.
	ViewStateBrowsing ViewState = iota
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
)

// helpText lists the key bindings.
const helpText = "tab graphique/tableau · 1/2/3 vues · d détails · q quitter"

// Height taken by everything but the series panel.
const chromeHeight = 12

// Model is the Bubble Tea model of the interactive report.
type Model struct {
	report *Report

	tab     Tab
	view    energy.View
	details bool
	table   table.Model

	width  int
	height int
	state  ViewState
}

// NewModel returns a Model browsing r, starting on the graph with the
// report's configured view and the details shown.
func NewModel(r *Report) *Model {
	m := &Model{
		report:  r,
		tab:     TabGraph,
		view:    r.opts.View,
		details: true,
		width:   r.opts.Width,
		height:  r.opts.ChartHeight + chromeHeight,
		state:   ViewStateBrowsing,
	}
	m.rebuildTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

//nolint:exhaustive // Only the bound keys are handled.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit

	case tea.KeyTab:
		if m.tab == TabGraph {
			m.tab = TabTable
			m.table.Focus()
		} else {
			m.tab = TabGraph
			m.table.Blur()
		}
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = ViewStateQuitting
			return m, tea.Quit
		case "1", "2", "3":
			m.view = energy.Views()[msg.Runes[0]-'1']
			return m, nil
		case "d":
			m.details = !m.details
			return m, nil
		}
	}

	if m.tab == TabTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) rebuildTable() {
	height := m.height - chromeHeight
	m.table = NewSeriesTable(m.report.Table, m.report.TableTitle(), height)
	if m.tab != TabTable {
		m.table.Blur()
	}
}

// View renders the current view.
func (m *Model) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	r := m.report

	var b strings.Builder
	b.WriteString(r.RenderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	switch {
	case r.ChartErr != nil:
		b.WriteString(r.RenderChart())
	case m.tab == TabTable:
		b.WriteString(m.table.View())
	default:
		b.WriteString(RenderChart(r.Series, m.width, r.opts.ChartHeight, r.opts.Color))
		b.WriteString("\n\n")
		b.WriteString(r.RenderGauge())
	}
	b.WriteString("\n\n")
	b.WriteString(r.RenderEmissions())

	if m.details && r.HasEmissions {
		b.WriteString("\n\n")
		b.WriteString(RenderBreakdown(r.Breakdown, m.width, r.opts.Decimals))
		b.WriteString("\n\n")
		b.WriteString(r.RenderFields(m.view))
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(helpText))
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, 2)
	for _, t := range []Tab{TabGraph, TabTable} {
		if t == m.tab {
			parts = append(parts, ActiveTabStyle.Render(t.String()))
		} else {
			parts = append(parts, TabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Tab returns the active series panel.
func (m *Model) Tab() Tab { return m.tab }

// FieldView returns the active field view.
func (m *Model) FieldView() energy.View { return m.view }

// Details reports whether the breakdown and fields are shown.
func (m *Model) Details() bool { return m.details }

// State returns the current state.
func (m *Model) State() ViewState { return m.state }

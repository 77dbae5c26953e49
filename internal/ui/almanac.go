// Package ui implements the terminal almanac dashboard.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	kindMoonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	kindSeasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	kindHorizonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// feedMsg carries a freshly built event feed into the model.
type feedMsg struct {
	events []Event
	err    error
}

// Model is the almanac dashboard.
type Model struct {
	cfg     FeedConfig
	width   int
	height  int
	cursor  int
	events  []Event
	loaded  bool
	lastErr error
}

// New creates a dashboard that will display events for the given window.
func New(cfg FeedConfig) Model {
	return Model{cfg: cfg}
}

// Init starts the feed computation in the background.
func (m Model) Init() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		events, err := BuildFeed(cfg)
		return feedMsg{events: events, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case feedMsg:
		m.events = msg.events
		m.lastErr = msg.err
		m.loaded = true
		m.cursor = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if len(m.events) > 0 {
				m.cursor = len(m.events) - 1
			}
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Almanac · %s · %.0f days from %s",
		m.cfg.SiteName, m.cfg.Days, m.cfg.Start.UTC().Format("2006-01-02"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if !m.loaded {
		b.WriteString("Computing events...\n")
		return b.String()
	}

	b.WriteString(m.renderEventTable())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · q quit"))
	return b.String()
}

func (m Model) renderEventTable() string {
	var b strings.Builder

	header := fmt.Sprintf("%-17s %-8s %-40s", "Time (UTC)", "Kind", "Event")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.events) == 0 {
		b.WriteString("  No events in this window\n")
		return b.String()
	}

	maxRows := m.height - 7 // title, header, help line
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(m.events) {
		endIdx = len(m.events)
	}

	for i := startIdx; i < endIdx; i++ {
		ev := m.events[i]
		row := fmt.Sprintf("%-17s %-8s %-40s",
			ev.Time.Format("2006-01-02 15:04"),
			ev.Kind,
			truncate(ev.Detail, 40))

		switch {
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(row))
		default:
			b.WriteString(kindStyle(ev.Kind).Render(row))
		}
		b.WriteString("\n")
	}

	if len(m.events) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d events", startIdx+1, endIdx, len(m.events)))
	}

	return b.String()
}

func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case "moon":
		return kindMoonStyle
	case "equinox", "solstice":
		return kindSeasonStyle
	case "horizon":
		return kindHorizonStyle
	default:
		return rowStyle
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dkovalev/sensory/engine"
	"github.com/dkovalev/sensory/model"
)

type tickMsg time.Time

type refreshMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model. It holds the snapshot most recently produced
// by the engine and re-renders the whole view from it on every refresh.
type Model struct {
	ticker   engine.Ticker
	interval time.Duration
	width    int
	height   int

	snap *model.Snapshot

	scroll   int
	paused   bool
	showHelp bool
}

// NewModel creates a new TUI model refreshing at the given interval.
func NewModel(ticker engine.Ticker, interval time.Duration) Model {
	return Model{ticker: ticker, interval: interval}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), refreshOnce(m.ticker))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refreshOnce runs one full source-and-parse cycle off the update loop.
// Tick serializes internally, so a capture that outlives the interval
// finishes before the next one starts.
func refreshOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{snap: ticker.Tick()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "a":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), refreshOnce(m.ticker))
			}
		case "r":
			return m, refreshOnce(m.ticker)
		case "j", "down":
			m.scroll++
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
		case "g", "home":
			m.scroll = 0
		case "G", "end":
			m.scroll = 1 << 30 // clamped against content in View
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), refreshOnce(m.ticker))

	case refreshMsg:
		// Unconditional replacement: the old snapshot is dropped whether
		// the new one is data or an error.
		m.snap = msg.snap
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap == nil {
		return "Reading sensors..."
	}

	var body string
	if m.snap.Err != nil {
		body = renderError(m.snap.Err, m.width)
	} else {
		body = renderSections(m.snap.Sections, m.width)
	}

	lines := strings.Split(body, "\n")
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}

	scroll := m.scroll
	if max := len(lines) - visible; scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, line := range lines[scroll:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i := end - scroll; i < visible; i++ {
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine(len(lines), visible))
	return b.String()
}

func (m Model) statusLine(total, visible int) string {
	status := "sensory — " + m.interval.String()
	if m.paused {
		status += "  " + pausedStyle.Render("PAUSED")
	}
	if total > visible {
		status += statusStyle.Render("  (j/k to scroll)")
	}
	return statusStyle.Render(status) + helpStyle.Render("   q quit · a pause · r refresh · ? help")
}

func (m Model) renderHelp() string {
	rows := []string{
		headerStyle.Render("sensory — keys"),
		"",
		"  q, ctrl+c   quit",
		"  a           pause / resume auto-refresh",
		"  r           refresh now",
		"  j/k, ↓/↑    scroll",
		"  g / G       top / bottom",
		"  ?           toggle this help",
		"",
		helpStyle.Render("press any key to close"),
	}
	return strings.Join(rows, "\n")
}

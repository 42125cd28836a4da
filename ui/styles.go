package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorHeader  = lipgloss.Color("#87CEEB")
	colorText    = lipgloss.Color("#E5E5E5")
	colorValue   = lipgloss.Color("#66CC66")
	colorInfo    = lipgloss.Color("#CCCC66")
	colorAdapter = lipgloss.Color("#999999")
	colorError   = lipgloss.Color("#CC3333")
	colorRowAlt  = lipgloss.Color("#262626")
	colorBorder  = lipgloss.Color("#4D4D4D")

	headerStyle  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	adapterStyle = lipgloss.NewStyle().Foreground(colorAdapter)
	keyStyle     = lipgloss.NewStyle().Foreground(colorText)
	valueStyle   = lipgloss.NewStyle().Foreground(colorValue)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	errorRule    = lipgloss.NewStyle().Foreground(colorError)
	helpStyle    = lipgloss.NewStyle().Foreground(colorAdapter)
	statusStyle  = lipgloss.NewStyle().Foreground(colorAdapter)
	pausedStyle  = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

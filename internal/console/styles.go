package console

import "github.com/charmbracelet/lipgloss"

// Palette for the decision box.
var (
	yesColor    = lipgloss.Color("#8BC34A")
	noColor     = lipgloss.Color("#e53935")
	borderColor = lipgloss.Color("#5f87ff")
	labelColor  = lipgloss.Color("#808080")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2)

	yesStyle = lipgloss.NewStyle().Foreground(yesColor).Bold(true)
	noStyle  = lipgloss.NewStyle().Foreground(noColor).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(labelColor)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

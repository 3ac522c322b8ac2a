package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

	chordStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED"))

	keyStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#6B7280"))
	selectedKeyStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)

	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

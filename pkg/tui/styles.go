package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Active pane purple, matching the rest of the charm ecosystem.
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("170"))

	helpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(38).
			Foreground(lipgloss.Color("245"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)

	badSwatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	noticeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("214")).
				Padding(1, 2)

	contentStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)
)

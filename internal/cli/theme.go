package cli

import "github.com/charmbracelet/lipgloss"

var (
	Yellow = lipgloss.Color("#FFD700")
	Green  = lipgloss.Color("#00C832")
	Red    = lipgloss.Color("#FF5555")
	Blue   = lipgloss.Color("#5FAFFF")
	Gray   = lipgloss.Color("#8A8A8A")

	TermStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	TranslationStyle = lipgloss.NewStyle().
				Foreground(Green)

	ThemeStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Gray)
)

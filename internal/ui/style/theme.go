package style

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Faint   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Faint:   lipgloss.NewStyle().Faint(true),
	}
}

// Plain renders everything unstyled; used for non-terminal output and tests.
func Plain() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Label: s, Success: s, Error: s, Faint: s}
}

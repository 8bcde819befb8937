package dotpad

import "github.com/charmbracelet/lipgloss"

// Style controls the dotpad's rendering.
type Style struct {
	Raised lipgloss.Style
	Flat   lipgloss.Style
	Glyph  lipgloss.Style
	Label  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Raised: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Flat:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Glyph:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

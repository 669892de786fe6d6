package tui

import "github.com/charmbracelet/lipgloss"

// Styles used to draw the search screen.
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Rating  lipgloss.Style
	Genres  lipgloss.Style
	Summary lipgloss.Style
}

// DefaultStyles mirrors the purple palette of the web page.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea")).MarginBottom(1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#764ba2")).Padding(0, 1),
		Name:    lipgloss.NewStyle().Bold(true),
		Rating:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f5a623")).Bold(true),
		Genres:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Summary: lipgloss.NewStyle(),
	}
}

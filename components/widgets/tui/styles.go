package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the browser view.
type Styles struct {
	Title    lipgloss.Style
	Group    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Info     lipgloss.Style
	Toast    map[string]lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Group:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("212")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Toast: map[string]lipgloss.Style{
			"success": lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		},
		Help: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// NoColorStyles keeps layout but drops colors.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain.Bold(true),
		Group:    plain.Bold(true),
		Item:     plain.PaddingLeft(2),
		Selected: plain.PaddingLeft(1).Bold(true),
		Dim:      plain,
		Info:     plain,
		Toast:    map[string]lipgloss.Style{},
		Help:     plain,
	}
}

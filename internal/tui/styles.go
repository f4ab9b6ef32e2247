package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/library/internal/ui"
)

// selectedBorder is the theme's accent color, used to frame the focused card.
func selectedBorder() lipgloss.Color {
	if c, ok := ui.Current().Accent.GetForeground().(lipgloss.Color); ok {
		return c
	}
	return lipgloss.Color("12")
}

func cardStyle(selected bool) lipgloss.Style {
	t := ui.Current()
	s := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	if selected {
		s = s.BorderForeground(selectedBorder())
	}
	return s
}

func modalStyle() lipgloss.Style {
	t := ui.Current()
	return lipgloss.NewStyle().Border(t.Border).BorderForeground(selectedBorder()).Padding(0, 2)
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	unreadStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

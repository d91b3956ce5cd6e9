package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polymul/internal/ui"
)

// styles bundles the lipgloss styles used by the dashboard, derived from
// the active TUI theme.
type styles struct {
	title   lipgloss.Style
	frame   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	dim     lipgloss.Style
}

func newStyles() styles {
	theme := ui.GetCurrentTUITheme()
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Padding(0, 1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(theme.Dim),
		value:   lipgloss.NewStyle().Foreground(theme.Text),
		success: lipgloss.NewStyle().Foreground(theme.Success),
		failure: lipgloss.NewStyle().Foreground(theme.Error),
		dim:     lipgloss.NewStyle().Foreground(theme.Dim),
	}
}

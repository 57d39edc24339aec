// Package tui holds the bubbletea front ends for the calculator, the gallery
// and the portfolio page.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("205")
	subtle = lipgloss.Color("241")
	danger = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	faintStyle = lipgloss.NewStyle().Foreground(subtle)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	helpStyle  = lipgloss.NewStyle().Foreground(subtle).MarginTop(1)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(accent).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)
	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Right)
)

// tabs renders labels as a tab bar with active highlighted.
func tabs(labels []string, active string) string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == active {
			out = append(out, activeTabStyle.Render(l))
		} else {
			out = append(out, inactiveTabStyle.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

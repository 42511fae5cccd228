package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/issuepad/issue"
)

var (
	redStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lightGreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	darkGreenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	// LabelStyle renders detail-view field names.
	LabelStyle = lipgloss.NewStyle().Bold(true)
)

// CategoryStyle returns the lipgloss style for a derived category.
func CategoryStyle(category issue.Category) lipgloss.Style {
	switch category {
	case issue.CategoryRed:
		return redStyle
	case issue.CategoryYellow:
		return yellowStyle
	case issue.CategoryLightGreen:
		return lightGreenStyle
	case issue.CategoryDarkGreen:
		return darkGreenStyle
	default:
		return mutedStyle
	}
}

// CategoryDot renders the colored marker shown next to an issue.
func CategoryDot(category issue.Category) string {
	return CategoryStyle(category).Render("●")
}

// Muted renders de-emphasized text.
func Muted(value string) string {
	return mutedStyle.Render(value)
}

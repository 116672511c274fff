package cli

import (
	"facilitywatch/internal/timeline"

	"github.com/charmbracelet/lipgloss"
)

// Styles for terminal output
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// badgeStyle maps a Bootstrap badge class onto a terminal colour.
func badgeStyle(class string) lipgloss.Style {
	switch class {
	case "bg-success":
		return successStyle
	case "bg-danger":
		return errorStyle
	case "bg-warning text-dark":
		return warningStyle
	case "bg-info text-dark":
		return infoStyle
	default:
		return mutedStyle
	}
}

func stepMark(s timeline.StepState, label string) string {
	switch s {
	case timeline.StepComplete:
		return successStyle.Render("(" + label + ")")
	case timeline.StepRejected:
		return errorStyle.Render("(" + label + ")")
	case timeline.StepActive:
		return warningStyle.Render("(" + label + ")")
	default:
		return mutedStyle.Render("(" + label + ")")
	}
}

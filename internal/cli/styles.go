package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// Semantic colors
var (
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorInfo)
	detailStyle  = lipgloss.NewStyle().PaddingLeft(6).Foreground(colorMuted)
)

func flowStyle(f domain.DeploymentFlow) lipgloss.Style {
	return titleStyle.Foreground(lipgloss.Color(f.Color))
}

func statusStyle(s domain.StepStatus) lipgloss.Style {
	switch s {
	case domain.StepCompleted:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case domain.StepRunning:
		return lipgloss.NewStyle().Foreground(colorInfo)
	case domain.StepFailed:
		return lipgloss.NewStyle().Foreground(colorError)
	default:
		return mutedStyle
	}
}

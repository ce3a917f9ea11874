package ui

import (
	"github.com/charmbracelet/lipgloss"

	"ssdlife/model"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)
	warnStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	fairStyle  = lipgloss.NewStyle().Foreground(colorOrange)

	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(colorGray)
)

func healthStyle(h model.HealthLabel) lipgloss.Style {
	switch h {
	case model.HealthCritical:
		return critStyle
	case model.HealthPoor:
		return warnStyle
	case model.HealthFair:
		return fairStyle
	default:
		return okStyle
	}
}

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EA043")).Bold(true)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// Status colours text green when s is Good and red otherwise.
func Status(s week.Status, text string) string {
	if s == week.Good {
		return goodStyle.Render(text)
	}
	return overStyle.Render(text)
}

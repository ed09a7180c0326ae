package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorButton   lipgloss.Color = "#E91E63"
	colorSelected lipgloss.Color = "#FF4081"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorBorder   lipgloss.Color = "#585b70"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorText)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginTop(1)
	courseStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	totalStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)

	buttonStyle         = lipgloss.NewStyle().Foreground(colorButton).Bold(true)
	selectedButtonStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	focusedMarkerStyle  = lipgloss.NewStyle().Foreground(colorSelected)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	alertStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 2)
)

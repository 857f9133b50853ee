package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorText)
	titleStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true)
	backStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	headingStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	subtotalStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(16)
)

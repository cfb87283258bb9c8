package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	stateStyle     = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	elapsedStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Padding(1, 4)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 3)
	buttonKeyStyle = lipgloss.NewStyle().Foreground(colorMuted)

	lapHeaderStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Padding(0, 1)
	lapCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	lapBestStyle   = lapCellStyle.Foreground(colorSuccess)
	lapWorstStyle  = lapCellStyle.Foreground(colorError)

	chartStyle = lipgloss.NewStyle().Foreground(colorAccent)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	paletteStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
	paletteDisabledStyle = lipgloss.NewStyle().Foreground(colorBorder)
	helpDescStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)

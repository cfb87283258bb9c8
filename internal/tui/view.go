package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/lapclock/internal/report"
	"github.com/jask/lapclock/internal/stopwatch"
)

const chartHeight = 3

// fixedRows is the height taken by everything except the lap list.
func fixedRows(showChart bool) int {
	// header, elapsed block, buttons, status bar, footer
	rows := 1 + 3 + 3 + 1 + 1
	if showChart {
		rows += chartHeight + 1
	}
	return rows
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()

	clock := elapsedStyle.Render(stopwatch.FormatElapsed(a.engine.Elapsed()))
	controls := lipgloss.JoinVertical(lipgloss.Center, clock, a.renderButtons())
	controls = lipgloss.PlaceHorizontal(max(1, a.width), lipgloss.Center, controls)

	var body string
	if a.palette != nil {
		body = a.palette.view(a.engine, a.width)
	} else {
		body = a.laps.View()
	}
	parts := []string{header, controls, body}
	if a.cfg.UI.ShowChart {
		parts = append(parts, renderChart(report.FromEngine(a.engine).Laps, max(10, a.width-4)))
	}
	main := fitHeight(strings.Join(parts, "\n"), max(1, a.height-2))
	view := strings.Join([]string{main, status, footer}, "\n")
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a *App) renderHeader() string {
	left := headerAppStyle.Render("lapclock")
	right := stateStyle.Render(a.engine.State().String() + " ")
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < a.width {
		gap = a.width - w
	}
	return renderBar(headerBarStyle, max(1, a.width), left+strings.Repeat(" ", gap)+right)
}

// primaryLabel and secondaryLabel read the button text straight from the
// engine state.
func primaryLabel(s stopwatch.State) string {
	switch s {
	case stopwatch.StateRunning:
		return "Pause"
	case stopwatch.StatePaused:
		return "Resume"
	}
	return "Start"
}

func secondaryLabel(s stopwatch.State) string {
	if s == stopwatch.StateRunning {
		return "Lap"
	}
	return "Reset"
}

func (a *App) renderButtons() string {
	state := a.engine.State()
	primary := buttonStyle.Render(primaryLabel(state) + " " + buttonKeyStyle.Render(a.keyHint(actionToggle)))
	secondary := buttonStyle.Render(secondaryLabel(state) + " " + buttonKeyStyle.Render(a.keyHint(actionSecondary)))
	return lipgloss.JoinHorizontal(lipgloss.Top, primary, "   ", secondary)
}

func (a *App) keyHint(action string) string {
	for _, b := range a.keys.BindingsForScope(scopeStopwatch) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func renderLapTable(e *stopwatch.Engine, width int) string {
	summary := report.FromEngine(e)
	if len(summary.Laps) == 0 {
		return lipgloss.PlaceHorizontal(max(1, width), lipgloss.Center, helpDescStyle.Render("No laps yet"))
	}
	rows := make([][]string, 0, len(summary.Laps))
	for _, l := range summary.Laps {
		rows = append(rows, []string{fmt.Sprintf("%02d", l.Index), l.Split, l.Cumulative})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers("Lap", "Lap time", "Total time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lapHeaderStyle
			}
			if row < 0 || row >= len(summary.Laps) {
				return lapCellStyle
			}
			switch summary.Laps[row].Mark {
			case report.MarkBest:
				return lapBestStyle
			case report.MarkWorst:
				return lapWorstStyle
			}
			return lapCellStyle
		})
	return lipgloss.PlaceHorizontal(max(1, width), lipgloss.Center, t.Render())
}

func renderChart(laps []report.LapEntry, width int) string {
	if len(laps) < 2 {
		return fitHeight(helpDescStyle.Render("splits chart appears after two laps"), chartHeight+1)
	}
	sl := sparkline.New(width, chartHeight)
	for _, l := range laps {
		sl.Push(float64(l.SplitMs))
	}
	sl.Draw()
	return helpDescStyle.Render("splits") + "\n" + chartStyle.Render(sl.View())
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, max(1, a.width), msg)
	}
	return renderBar(statusBarStyle, max(1, a.width), msg)
}

func (a *App) renderFooter() string {
	scope := scopeStopwatch
	if a.palette != nil {
		scope = scopePalette
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := a.keys.BindingsForScope(scope)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, a.width), line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

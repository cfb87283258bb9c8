// Package tui is the terminal presentation of a stopwatch session. It owns
// the tick cadence and renders the engine's state; it never keeps timing
// state of its own.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/lapclock/internal/command"
	"github.com/jask/lapclock/internal/config"
	"github.com/jask/lapclock/internal/scheduler"
	"github.com/jask/lapclock/internal/stopwatch"
)

// App ties the engine, its tick scheduler and the views together.
type App struct {
	engine   *stopwatch.Engine
	sched    *scheduler.Tea
	keys     *KeyRegistry
	commands *command.Registry
	logger   *log.Logger
	cfg      config.Config

	width     int
	height    int
	laps      viewport.Model
	lapCount  int
	palette   *palette
	status    string
	statusErr bool
	quitting  bool
}

type Options struct {
	Config   config.Config
	Clock    stopwatch.Clock
	Logger   *log.Logger
	Commands *command.Registry
}

func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Commands == nil {
		opts.Commands = command.DefaultRegistry()
	}
	sched := scheduler.NewTea(opts.Config.Tick.Interval)
	engine := stopwatch.New(
		stopwatch.WithClock(opts.Clock),
		stopwatch.WithScheduler(sched),
		stopwatch.WithLogger(opts.Logger),
		stopwatch.WithHighlightAfter(opts.Config.Laps.HighlightAfter),
	)
	a := &App{
		engine:   engine,
		sched:    sched,
		keys:     NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), opts.Config.Keys)),
		commands: opts.Commands,
		logger:   opts.Logger,
		cfg:      opts.Config,
		width:    80,
		height:   24,
		laps:     viewport.New(60, 8),
		status:   "Ready",
	}
	a.refreshLaps()
	return a
}

// Engine exposes the session for the end-of-run summary.
func (a *App) Engine() *stopwatch.Engine { return a.engine }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resizeLaps()
	case scheduler.TickMsg:
		if !a.sched.Accept(m) {
			return a, nil
		}
		a.engine.Tick()
		return a, a.sched.Next()
	case tea.BlurMsg:
		// stop redrawing while hidden; the engine keeps running and the
		// next tick catches up from its last tick instant
		if a.sched.Armed() {
			a.sched.Disarm()
			a.logger.Debug("Ticking suspended", "session", a.engine.ID())
		}
	case tea.FocusMsg:
		if a.engine.Running() && !a.sched.Armed() {
			a.sched.Arm()
			a.engine.Tick()
			a.logger.Debug("Ticking resumed", "session", a.engine.ID())
			return a, a.sched.Next()
		}
	case tea.KeyMsg:
		if a.palette != nil {
			return a, a.handlePaletteKey(m)
		}
		return a, a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	action, ok := a.keys.Action(m, scopeStopwatch)
	if !ok {
		return nil
	}
	switch action {
	case actionQuit:
		return a.quit()
	case actionPalette:
		a.palette = newPalette(a.commands)
		return nil
	case actionScrollUp:
		a.laps.LineUp(1)
		return nil
	case actionScrollDown:
		a.laps.LineDown(1)
		return nil
	case actionToggle:
		return a.runCommand(command.IDToggle)
	case actionSecondary:
		return a.runCommand(command.IDSecondary)
	case actionLap:
		return a.runCommand(command.IDLap)
	}
	return nil
}

func (a *App) handlePaletteKey(m tea.KeyMsg) tea.Cmd {
	action, _ := a.keys.Action(m, scopePalette)
	switch action {
	case actionClose:
		a.palette = nil
		return nil
	case actionSelect:
		c, err := a.palette.choose(a.engine)
		a.palette = nil
		if err != nil {
			a.setError(err)
			return nil
		}
		if c.ID == command.IDQuit {
			return a.quit()
		}
		return a.run(c)
	}
	return a.palette.update(m)
}

func (a *App) runCommand(id string) tea.Cmd {
	c, err := a.commands.Resolve(id)
	if err != nil {
		a.setError(err)
		return nil
	}
	return a.run(c)
}

// run executes c against the engine and returns the first tick command when
// c armed the scheduler.
func (a *App) run(c command.Command) tea.Cmd {
	wasArmed := a.sched.Armed()
	a.engine.Tick()
	msg, err := command.Execute(c, a.engine)
	if err != nil {
		a.logger.Warn("Command refused", "command", c.ID, "state", a.engine.State(), "error", err)
		a.setError(err)
		return nil
	}
	a.logger.Info("Command executed", "command", c.ID, "session", a.engine.ID(), "elapsed_ms", a.engine.Elapsed())
	a.setStatus(msg)
	a.refreshLaps()
	if a.sched.Armed() && !wasArmed {
		return a.sched.Next()
	}
	return nil
}

func (a *App) quit() tea.Cmd {
	if a.engine.Running() {
		_ = a.engine.Pause()
	}
	a.quitting = true
	return tea.Quit
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// refreshLaps re-renders the lap table into the viewport, following the
// newest lap when one was added.
func (a *App) refreshLaps() {
	a.laps.SetContent(renderLapTable(a.engine, a.laps.Width))
	if n := a.engine.LapCount(); n > a.lapCount {
		a.laps.GotoBottom()
	}
	a.lapCount = a.engine.LapCount()
}

func (a *App) resizeLaps() {
	a.laps.Width = max(20, a.width-2)
	a.laps.Height = max(3, a.height-fixedRows(a.cfg.UI.ShowChart))
	a.refreshLaps()
}

package command

import (
	"fmt"

	"github.com/jask/lapclock/internal/stopwatch"
)

func Defaults() []Command {
	return []Command{
		{ID: IDStart, Aliases: []string{"s", "resume"}, Description: "start or resume timing", Run: start, Disabled: whenRunning("already running")},
		{ID: IDPause, Aliases: []string{"p", "stop"}, Description: "pause timing", Run: pause, Disabled: whenNotRunning("not running")},
		{ID: IDToggle, Aliases: []string{"t"}, Description: "start when stopped, pause when running", Run: Toggle},
		{ID: IDLap, Aliases: []string{"l", "leap", "split"}, Description: "record a lap", Run: lap},
		{ID: IDReset, Aliases: []string{"r", "clear"}, Description: "clear time and laps", Run: reset, Disabled: whenRunning("pause first")},
		{ID: IDSecondary, Aliases: []string{"enter"}, Description: "lap while running, reset otherwise", Run: Secondary},
		{ID: IDQuit, Aliases: []string{"q", "exit"}, Description: "quit"},
	}
}

func DefaultRegistry() *Registry {
	return NewRegistry(Defaults())
}

// Toggle is the primary control: pause when running, start otherwise.
func Toggle(e *stopwatch.Engine) (string, error) {
	if e.Running() {
		return pause(e)
	}
	return start(e)
}

// Secondary is the dual-purpose control: a lap while running, a reset
// otherwise.
func Secondary(e *stopwatch.Engine) (string, error) {
	if e.Running() {
		return lap(e)
	}
	return reset(e)
}

func start(e *stopwatch.Engine) (string, error) {
	resumed := e.State() == stopwatch.StatePaused
	if err := e.Start(); err != nil {
		return "", err
	}
	if resumed {
		return "resumed", nil
	}
	return "started", nil
}

func pause(e *stopwatch.Engine) (string, error) {
	if err := e.Pause(); err != nil {
		return "", err
	}
	return "paused at " + stopwatch.FormatElapsed(e.Elapsed()), nil
}

func lap(e *stopwatch.Engine) (string, error) {
	l, idx := e.RecordLap()
	return fmt.Sprintf("lap %02d: %s", idx, stopwatch.FormatElapsed(l.SplitMs)), nil
}

func reset(e *stopwatch.Engine) (string, error) {
	if err := e.Reset(); err != nil {
		return "", err
	}
	return "reset", nil
}

func whenRunning(reason string) func(*stopwatch.Engine) (bool, string) {
	return func(e *stopwatch.Engine) (bool, string) {
		if e.Running() {
			return true, reason
		}
		return false, ""
	}
}

func whenNotRunning(reason string) func(*stopwatch.Engine) (bool, string) {
	return func(e *stopwatch.Engine) (bool, string) {
		if !e.Running() {
			return true, reason
		}
		return false, ""
	}
}

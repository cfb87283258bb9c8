// Package headless drives a stopwatch from a line-oriented command stream,
// for pipes and scripts where no terminal UI is available.
package headless

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jask/lapclock/internal/command"
	"github.com/jask/lapclock/internal/report"
	"github.com/jask/lapclock/internal/scheduler"
	"github.com/jask/lapclock/internal/stopwatch"
)

type Options struct {
	Interval       time.Duration
	HighlightAfter int
	Format         string
	Clock          stopwatch.Clock
	Logger         *log.Logger
	Registry       *command.Registry
}

// Host owns one engine. The ticker goroutine and the command reader both
// take mu before touching it.
type Host struct {
	mu     sync.Mutex
	engine *stopwatch.Engine
	loop   *scheduler.Loop
	reg    *command.Registry
	out    io.Writer
	logger *log.Logger
	format string
}

func New(opts Options, out io.Writer) (*Host, error) {
	if !report.ValidFormat(opts.Format) {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownFormat, opts.Format)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Registry == nil {
		opts.Registry = command.DefaultRegistry()
	}
	h := &Host{
		reg:    opts.Registry,
		out:    out,
		logger: opts.Logger,
		format: opts.Format,
	}
	h.engine = stopwatch.New(
		stopwatch.WithClock(opts.Clock),
		stopwatch.WithLogger(opts.Logger),
		stopwatch.WithHighlightAfter(opts.HighlightAfter),
	)
	h.loop = scheduler.NewLoop(opts.Interval, h.tick)
	h.engine.SetScheduler(h.loop)
	return h, nil
}

func (h *Host) tick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.Tick()
}

// Run reads one command per line until quit, EOF or ctx is done, then pauses
// a running stopwatch and writes the session summary.
func (h *Host) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case line, ok := <-lines:
			if !ok {
				runErr = <-scanErr
				break loop
			}
			if quit := h.Exec(line); quit {
				break loop
			}
		}
	}

	if err := h.finish(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("read commands: %w", runErr)
	}
	return nil
}

// Exec runs a single command line and reports whether it asked to quit.
// A blank line is the secondary control. Command errors are written to the
// output and do not stop the host.
func (h *Host) Exec(line string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	input := strings.TrimSpace(line)
	if input == "" {
		input = command.IDSecondary
	}
	c, err := h.reg.Resolve(input)
	if err != nil {
		h.logger.Warn("Unknown command", "input", line)
		fmt.Fprintf(h.out, "error: %v\n", err)
		return false
	}
	if c.ID == command.IDQuit {
		return true
	}

	h.engine.Tick()
	before := h.engine.LapCount()
	msg, err := command.Execute(c, h.engine)
	if err != nil {
		if errors.Is(err, stopwatch.ErrInvalidState) {
			h.logger.Warn("Command refused", "command", c.ID, "state", h.engine.State(), "error", err)
		}
		fmt.Fprintf(h.out, "error: %v\n", err)
		return false
	}
	h.logger.Info("Command executed", "command", c.ID, "session", h.engine.ID(), "elapsed_ms", h.engine.Elapsed())

	if h.engine.LapCount() > before {
		h.printLap(before)
		return false
	}
	fmt.Fprintln(h.out, msg)
	return false
}

func (h *Host) printLap(idx int) {
	laps := h.engine.Laps()
	if idx == 0 {
		fmt.Fprintln(h.out, stopwatch.LapHeader())
	}
	fmt.Fprintln(h.out, stopwatch.FormatLapRow(idx, laps[idx]))
	if c, ok := h.engine.Highlight(); ok {
		fmt.Fprintf(h.out, "best %02d  worst %02d\n", c.Best, c.Worst)
	}
}

func (h *Host) finish() error {
	h.mu.Lock()
	if h.engine.Running() {
		if err := h.engine.Pause(); err != nil {
			h.mu.Unlock()
			return err
		}
	}
	summary := report.FromEngine(h.engine)
	h.mu.Unlock()

	h.loop.Wait()
	if err := report.Write(h.out, h.format, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Summary returns the current session summary.
func (h *Host) Summary() report.Summary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return report.FromEngine(h.engine)
}

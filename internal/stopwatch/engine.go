// Package stopwatch holds the timing engine: accumulated elapsed time,
// pause/resume, lap splits and best/worst lap classification.
//
// The engine has no internal locking. Callers on more than one goroutine
// must serialize every call.
package stopwatch

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// State is the engine's position in its start/pause/reset cycle.
type State int

const (
	StateInitial State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "initial"
	}
}

// Scheduler delivers periodic Tick calls while armed. The engine arms it on
// Start and disarms it on Pause; the scheduler owns the cadence.
type Scheduler interface {
	Arm()
	Disarm()
}

type nopScheduler struct{}

func (nopScheduler) Arm()    {}
func (nopScheduler) Disarm() {}

// Engine is a single stopwatch session.
type Engine struct {
	clock  Clock
	sched  Scheduler
	logger *log.Logger

	id             uuid.UUID
	state          State
	elapsedMs      int64
	lastTickAt     time.Time
	laps           []Lap
	prevLapMs      int64
	highlightAfter int
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHighlightAfter sets how many laps must exist before Highlight reports
// a classification. Negative values are ignored.
func WithHighlightAfter(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.highlightAfter = n
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		clock:          SystemClock{},
		sched:          nopScheduler{},
		logger:         log.Default(),
		id:             uuid.New(),
		highlightAfter: DefaultHighlightAfter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetScheduler swaps the scheduler. Hosts that build their scheduler around
// the engine use it after New.
func (e *Engine) SetScheduler(s Scheduler) {
	if s == nil {
		s = nopScheduler{}
	}
	e.sched = s
}

func (e *Engine) ID() uuid.UUID       { return e.id }
func (e *Engine) State() State        { return e.state }
func (e *Engine) Running() bool       { return e.state == StateRunning }
func (e *Engine) Elapsed() int64      { return e.elapsedMs }
func (e *Engine) HighlightAfter() int { return e.highlightAfter }

// Laps returns a copy of the recorded laps in recording order.
func (e *Engine) Laps() []Lap {
	out := make([]Lap, len(e.laps))
	copy(out, e.laps)
	return out
}

func (e *Engine) LapCount() int { return len(e.laps) }

// Start begins or resumes timing and arms the scheduler.
func (e *Engine) Start() error {
	if e.state == StateRunning {
		return &InvalidStateError{Op: "start", State: e.state}
	}
	e.state = StateRunning
	e.lastTickAt = e.clock.Now()
	e.sched.Arm()
	e.logger.Debug("Stopwatch started", "session", e.id, "elapsed_ms", e.elapsedMs)
	return nil
}

// Pause flushes the last partial interval, stops timing and disarms the
// scheduler.
func (e *Engine) Pause() error {
	if e.state != StateRunning {
		return &InvalidStateError{Op: "pause", State: e.state}
	}
	e.Tick()
	e.state = StatePaused
	e.sched.Disarm()
	e.logger.Debug("Stopwatch paused", "session", e.id, "elapsed_ms", e.elapsedMs)
	return nil
}

// Reset clears elapsed time and laps. It is refused while running.
func (e *Engine) Reset() error {
	if e.state == StateRunning {
		return &InvalidStateError{Op: "reset", State: e.state}
	}
	e.state = StateInitial
	e.elapsedMs = 0
	e.laps = nil
	e.prevLapMs = 0
	e.lastTickAt = time.Time{}
	e.id = uuid.New()
	e.logger.Debug("Stopwatch reset", "session", e.id)
	return nil
}

// Tick adds the time since the previous tick and returns the new elapsed
// milliseconds. A clock that moved backwards contributes nothing. Ticks that
// arrive while not running are ignored.
func (e *Engine) Tick() int64 {
	if e.state != StateRunning {
		return e.elapsedMs
	}
	now := e.clock.Now()
	delta := now.Sub(e.lastTickAt)
	if delta < 0 {
		e.logger.Warn("Clock moved backwards, ignoring interval", "session", e.id, "delta", delta)
		e.lastTickAt = now
		return e.elapsedMs
	}
	ms := delta.Milliseconds()
	e.elapsedMs += ms
	// keep the sub-millisecond remainder for the next tick
	e.lastTickAt = e.lastTickAt.Add(time.Duration(ms) * time.Millisecond)
	return e.elapsedMs
}

// RecordLap closes the current lap at the present elapsed time. It is valid
// in every state and returns the new lap with its zero-based index.
func (e *Engine) RecordLap() (Lap, int) {
	lap := Lap{
		SplitMs:      e.elapsedMs - e.prevLapMs,
		CumulativeMs: e.elapsedMs,
	}
	e.laps = append(e.laps, lap)
	e.prevLapMs = e.elapsedMs
	idx := len(e.laps) - 1
	e.logger.Debug("Lap recorded", "session", e.id, "index", idx, "split_ms", lap.SplitMs, "cumulative_ms", lap.CumulativeMs)
	return lap, idx
}

// Classify returns best/worst indexes over all laps.
func (e *Engine) Classify() (Classification, bool) {
	return ClassifyLaps(e.laps)
}

// Highlight is Classify gated by the highlight threshold: nothing is
// reported until the lap count exceeds it.
func (e *Engine) Highlight() (Classification, bool) {
	if !ShouldHighlight(len(e.laps), e.highlightAfter) {
		return Classification{}, false
	}
	return e.Classify()
}

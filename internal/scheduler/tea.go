// Package scheduler provides the periodic tick sources the stopwatch engine
// arms and disarms.
package scheduler

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval matches the refresh cadence of the stopwatch display.
const DefaultInterval = 20 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered to the bubbletea program on every scheduled tick.
type TickMsg struct {
	ID  int
	Tag int
	At  time.Time
}

// Tea schedules ticks as bubbletea commands. Every Arm or Disarm starts a new
// generation, and ticks from an older generation are rejected by Accept, so
// nothing scheduled before a Disarm can reach the engine afterwards.
//
// Tea is not safe for concurrent use; it lives on the program's Update
// goroutine together with the engine.
type Tea struct {
	id       int
	tag      int
	armed    bool
	interval time.Duration
}

func NewTea(interval time.Duration) *Tea {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tea{id: nextID(), interval: interval}
}

func (s *Tea) ID() int                 { return s.id }
func (s *Tea) Armed() bool             { return s.armed }
func (s *Tea) Interval() time.Duration { return s.interval }

func (s *Tea) Arm() {
	s.armed = true
	s.tag++
}

func (s *Tea) Disarm() {
	s.armed = false
	s.tag++
}

// Next returns the command for the following tick, or nil when disarmed.
func (s *Tea) Next() tea.Cmd {
	if !s.armed {
		return nil
	}
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, At: t}
	})
}

// Accept reports whether msg belongs to the current armed generation.
func (s *Tea) Accept(msg TickMsg) bool {
	return s.armed && msg.ID == s.id && msg.Tag == s.tag
}

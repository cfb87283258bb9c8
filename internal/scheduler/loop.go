package scheduler

import (
	"sync"
	"time"
)

// Loop calls fn on a time.Ticker while armed. It is meant for hosts without
// an event loop; fn must do its own locking around the engine.
type Loop struct {
	interval time.Duration
	fn       func()

	mu   sync.Mutex
	gen  int
	stop chan struct{}
	wg   sync.WaitGroup
}

func NewLoop(interval time.Duration, fn func()) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval, fn: fn}
}

// Arm starts a ticker goroutine. Arming an armed loop is a no-op.
func (l *Loop) Arm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return
	}
	l.gen++
	stop := make(chan struct{})
	l.stop = stop
	l.wg.Add(1)
	go l.run(l.gen, stop)
}

// Disarm stops the ticker. It does not wait for a callback already in
// progress, so it may be called from inside fn's critical section.
func (l *Loop) Disarm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop == nil {
		return
	}
	close(l.stop)
	l.stop = nil
	l.gen++
}

// Armed reports whether a ticker goroutine is live.
func (l *Loop) Armed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stop != nil
}

// Wait blocks until every ticker goroutine has exited.
func (l *Loop) Wait() {
	l.wg.Wait()
}

func (l *Loop) current(gen int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen == gen
}

func (l *Loop) run(gen int, stop <-chan struct{}) {
	defer l.wg.Done()
	t := time.NewTicker(l.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if !l.current(gen) {
				return
			}
			l.fn()
		}
	}
}

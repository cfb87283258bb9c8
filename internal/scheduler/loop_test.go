package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoopTicksWhileArmed(t *testing.T) {
	var n atomic.Int64
	l := NewLoop(time.Millisecond, func() { n.Add(1) })
	require.False(t, l.Armed())

	l.Arm()
	l.Arm()
	require.True(t, l.Armed())
	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	l.Disarm()
	l.Wait()
	require.False(t, l.Armed())
	stopped := n.Load()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, stopped, n.Load())
}

func TestLoopDisarmFromCallback(t *testing.T) {
	var n atomic.Int64
	var l *Loop
	l = NewLoop(time.Millisecond, func() {
		n.Add(1)
		l.Disarm()
	})
	l.Arm()
	require.Eventually(t, func() bool { return !l.Armed() }, time.Second, time.Millisecond)
	l.Wait()
	require.Equal(t, int64(1), n.Load())

	l.Arm()
	require.Eventually(t, func() bool { return n.Load() == 2 }, time.Second, time.Millisecond)
	l.Wait()
}

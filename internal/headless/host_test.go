package headless

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/jask/lapclock/internal/report"
	"github.com/jask/lapclock/internal/stopwatch"
)

func newHost(t *testing.T, format string) (*Host, *stopwatch.ManualClock, *bytes.Buffer) {
	t.Helper()
	clock := stopwatch.NewManualClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	var out bytes.Buffer
	h, err := New(Options{
		// long enough that the ticker never fires during a test
		Interval:       time.Hour,
		HighlightAfter: stopwatch.DefaultHighlightAfter,
		Format:         format,
		Clock:          clock,
		Logger:         log.New(io.Discard),
	}, &out)
	require.NoError(t, err)
	return h, clock, &out
}

func TestExecScript(t *testing.T) {
	h, clock, out := newHost(t, "text")

	require.False(t, h.Exec("start"))
	clock.Advance(time.Second)
	require.False(t, h.Exec(""))
	clock.Advance(500 * time.Millisecond)
	require.False(t, h.Exec("lap"))
	require.False(t, h.Exec("reset"))
	require.False(t, h.Exec("pause"))
	require.False(t, h.Exec(""))
	require.False(t, h.Exec("xyzzy"))
	require.True(t, h.Exec("q"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, "started", lines[0])
	require.Contains(t, lines[1], "Lap time")
	require.Equal(t, []string{"00", "00:00:01.00", "00:00:01.00"}, strings.Fields(lines[3]))
	require.Equal(t, []string{"01", "00:00:00.50", "00:00:01.50"}, strings.Fields(lines[4]))
	require.Equal(t, "error: reset while running", lines[5])
	require.Equal(t, "paused at 00:00:01.50", lines[6])
	require.Equal(t, "reset", lines[7])
	require.Equal(t, `error: unknown command: "xyzzy"`, lines[8])
	require.Len(t, lines, 9)

	s := h.Summary()
	require.Equal(t, "initial", s.State)
	require.Empty(t, s.Laps)
}

func TestExecPrintsClassificationFromFourthLap(t *testing.T) {
	h, clock, out := newHost(t, "text")
	h.Exec("start")
	for _, d := range []time.Duration{500, 300, 300, 700} {
		clock.Advance(d * time.Millisecond)
		h.Exec("lap")
	}
	require.Equal(t, 1, strings.Count(out.String(), "best "))
	require.Contains(t, out.String(), "best 01  worst 03")
}

func TestRunPausesAndWritesSummaryOnEOF(t *testing.T) {
	h, _, out := newHost(t, "json")

	err := h.Run(context.Background(), strings.NewReader("start\nlap\n"))
	require.NoError(t, err)

	text := out.String()
	start := strings.Index(text, "{")
	require.GreaterOrEqual(t, start, 0)
	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(text[start:]), &s))
	require.Equal(t, "paused", s.State)
	require.Len(t, s.Laps, 1)
}

func TestRunStopsOnQuit(t *testing.T) {
	h, _, out := newHost(t, "text")
	err := h.Run(context.Background(), strings.NewReader("start\nquit\nlap\n"))
	require.NoError(t, err)
	require.NotContains(t, out.String(), "Lap time")
	require.True(t, strings.HasSuffix(out.String(), "Total 00:00:00.00 (paused)\n"))
}

func TestRunHonoursCancelledContext(t *testing.T) {
	h, _, out := newHost(t, "text")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	require.NoError(t, h.Run(ctx, pr))
	require.Contains(t, out.String(), "(initial)")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"}, io.Discard)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

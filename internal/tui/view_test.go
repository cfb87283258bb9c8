package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lapclock/internal/stopwatch"
)

func TestButtonLabelsFollowState(t *testing.T) {
	cases := []struct {
		state     stopwatch.State
		primary   string
		secondary string
	}{
		{stopwatch.StateInitial, "Start", "Reset"},
		{stopwatch.StateRunning, "Pause", "Lap"},
		{stopwatch.StatePaused, "Resume", "Reset"},
	}
	for _, tc := range cases {
		if got := primaryLabel(tc.state); got != tc.primary {
			t.Errorf("primaryLabel(%v) = %q, want %q", tc.state, got, tc.primary)
		}
		if got := secondaryLabel(tc.state); got != tc.secondary {
			t.Errorf("secondaryLabel(%v) = %q, want %q", tc.state, got, tc.secondary)
		}
	}
}

func TestViewShowsElapsedAndControls(t *testing.T) {
	a, clock := newTestApp(t)
	v := a.View()
	for _, want := range []string{"00:00:00.00", "Start", "Reset", "No laps yet", "initial"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}

	press(a, runeKey('s'))
	clock.Advance(3_661_250 * time.Millisecond)
	press(a, runeKey('l'))
	v = a.View()
	for _, want := range []string{"01:01:01.25", "Pause", "Lap time", "running"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}
}

func TestLapTableListsEveryLap(t *testing.T) {
	clock := stopwatch.NewManualClock(time.Unix(0, 0))
	e := stopwatch.New(stopwatch.WithClock(clock))
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	for _, d := range []time.Duration{500, 300, 300, 700} {
		clock.Advance(d * time.Millisecond)
		e.Tick()
		e.RecordLap()
	}
	out := renderLapTable(e, 80)
	for _, want := range []string{"Lap", "Total time", "00:00:00.50", "00:00:00.70", "00:00:01.80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "00:00:00.30"); n != 2 {
		t.Fatalf("expected two 300ms splits, found %d:\n%s", n, out)
	}
}

func TestPaletteViewAndFooter(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, runeKey('s'))
	press(a, runeKey(':'))
	v := a.View()
	if !strings.Contains(v, "cmd>") {
		t.Fatalf("palette prompt missing:\n%s", v)
	}
	if !strings.Contains(v, "already running") {
		t.Fatalf("expected disabled start reason:\n%s", v)
	}
	if !strings.Contains(a.renderFooter(), "close") {
		t.Fatalf("footer should list palette bindings")
	}
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(a.renderFooter(), "start/pause") {
		t.Fatalf("footer should list stopwatch bindings")
	}
}

func TestFitHeight(t *testing.T) {
	if got := fitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("fitHeight trim = %q", got)
	}
	if got := fitHeight("a", 3); got != "a\n\n" {
		t.Fatalf("fitHeight pad = %q", got)
	}
	if got := fitHeight("a", 0); got != "" {
		t.Fatalf("fitHeight zero = %q", got)
	}
}

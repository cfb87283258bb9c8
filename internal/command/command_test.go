package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/lapclock/internal/stopwatch"
)

func TestResolve(t *testing.T) {
	reg := DefaultRegistry()
	cases := []struct {
		input string
		want  string
	}{
		{"start", IDStart},
		{"  PAUSE ", IDPause},
		{"leap", IDLap},
		{"q", IDQuit},
		{"sec", IDSecondary},
		{"re", IDReset},
		{"strat", IDStart},
		{"lapp", IDLap},
		{"qiut", IDQuit},
	}
	for _, tc := range cases {
		c, err := reg.Resolve(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.want, c.ID, "input %q", tc.input)
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := DefaultRegistry()
	for _, input := range []string{"", "xyzzy", "launch"} {
		_, err := reg.Resolve(input)
		require.ErrorIs(t, err, ErrUnknownCommand, "input %q", input)
	}
}

func TestRegisterReplacesByID(t *testing.T) {
	reg := NewRegistry(Defaults())
	n := len(reg.Commands())
	reg.Register(Command{ID: IDQuit, Description: "leave"})
	reg.Register(Command{})
	require.Len(t, reg.Commands(), n)
	c, err := reg.Resolve("quit")
	require.NoError(t, err)
	require.Equal(t, "leave", c.Description)
}

func TestSecondaryDispatchesOnState(t *testing.T) {
	clock := stopwatch.NewManualClock(time.Unix(0, 0))
	e := stopwatch.New(stopwatch.WithClock(clock))

	require.NoError(t, e.Start())
	clock.Advance(750 * time.Millisecond)
	e.Tick()

	msg, err := Secondary(e)
	require.NoError(t, err)
	require.Equal(t, "lap 00: 00:00:00.75", msg)
	require.Equal(t, 1, e.LapCount())

	msg, err = Toggle(e)
	require.NoError(t, err)
	require.Equal(t, "paused at 00:00:00.75", msg)

	msg, err = Secondary(e)
	require.NoError(t, err)
	require.Equal(t, "reset", msg)
	require.Zero(t, e.LapCount())
	require.Zero(t, e.Elapsed())
}

func TestExecuteSurfacesStateErrors(t *testing.T) {
	reg := DefaultRegistry()
	e := stopwatch.New(stopwatch.WithClock(stopwatch.NewManualClock(time.Unix(0, 0))))

	pause, err := reg.Resolve("pause")
	require.NoError(t, err)
	_, err = Execute(pause, e)
	require.ErrorIs(t, err, stopwatch.ErrInvalidState)

	start, err := reg.Resolve("start")
	require.NoError(t, err)
	msg, err := Execute(start, e)
	require.NoError(t, err)
	require.Equal(t, "started", msg)

	reset, err := reg.Resolve("reset")
	require.NoError(t, err)
	_, err = Execute(reset, e)
	require.EqualError(t, err, "reset while running")

	quit, err := reg.Resolve("exit")
	require.NoError(t, err)
	msg, err = Execute(quit, e)
	require.NoError(t, err)
	require.Empty(t, msg)
}

func TestSearchOrdersEnabledFirst(t *testing.T) {
	reg := DefaultRegistry()
	e := stopwatch.New(stopwatch.WithClock(stopwatch.NewManualClock(time.Unix(0, 0))))
	require.NoError(t, e.Start())

	res := reg.Search("", e)
	require.Len(t, res, len(Defaults()))
	seenDisabled := false
	for _, r := range res {
		if r.Disabled {
			seenDisabled = true
			require.NotEmpty(t, r.Reason)
			continue
		}
		require.False(t, seenDisabled, "enabled %q listed after a disabled command", r.ID)
	}

	res = reg.Search("lap", e)
	ids := make([]string, 0, len(res))
	for _, r := range res {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []string{"lap", "secondary", "reset"}, ids)
}

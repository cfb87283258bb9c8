package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLaps(t *testing.T) {
	splits := func(ms ...int64) []Lap {
		out := make([]Lap, 0, len(ms))
		var cum int64
		for _, s := range ms {
			cum += s
			out = append(out, Lap{SplitMs: s, CumulativeMs: cum})
		}
		return out
	}

	cases := []struct {
		name  string
		laps  []Lap
		want  Classification
		found bool
	}{
		{"empty", nil, Classification{}, false},
		{"single", splits(42), Classification{Best: 0, Worst: 0}, true},
		{"first minimum wins", splits(500, 300, 300, 700), Classification{Best: 1, Worst: 3}, true},
		{"first maximum wins", splits(900, 100, 900, 200), Classification{Best: 1, Worst: 0}, true},
		{"all equal", splits(5, 5, 5, 5), Classification{Best: 0, Worst: 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyLaps(tc.laps)
			require.Equal(t, tc.found, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestShouldHighlight(t *testing.T) {
	require.False(t, ShouldHighlight(3, DefaultHighlightAfter))
	require.True(t, ShouldHighlight(4, DefaultHighlightAfter))
	require.True(t, ShouldHighlight(1, 0))
}

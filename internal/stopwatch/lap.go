package stopwatch

// Lap is one recorded lap boundary.
type Lap struct {
	SplitMs      int64 `json:"split_ms" yaml:"split_ms" toml:"split_ms"`
	CumulativeMs int64 `json:"cumulative_ms" yaml:"cumulative_ms" toml:"cumulative_ms"`
}

// Classification holds the indexes of the fastest and slowest laps.
type Classification struct {
	Best  int
	Worst int
}

// DefaultHighlightAfter is the lap count that must be exceeded before
// best/worst laps are highlighted.
const DefaultHighlightAfter = 3

// ClassifyLaps returns the index of the first minimum split (best) and the
// first maximum split (worst). ok is false for an empty slice.
func ClassifyLaps(laps []Lap) (c Classification, ok bool) {
	if len(laps) == 0 {
		return Classification{}, false
	}
	for i, l := range laps {
		if l.SplitMs < laps[c.Best].SplitMs {
			c.Best = i
		}
		if l.SplitMs > laps[c.Worst].SplitMs {
			c.Worst = i
		}
	}
	return c, true
}

// ShouldHighlight reports whether a lap list of length n is past the
// highlight threshold.
func ShouldHighlight(n, after int) bool {
	return n > after
}

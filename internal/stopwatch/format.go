package stopwatch

import (
	"fmt"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// FormatElapsed renders ms as HH:MM:SS.cc. Centiseconds are truncated, so 995
// renders as 00:00:00.99. Hours grow past two digits when needed.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / msPerHour
	ms -= hours * msPerHour
	minutes := ms / msPerMinute
	ms -= minutes * msPerMinute
	seconds := ms / msPerSecond
	ms -= seconds * msPerSecond
	// first two digits of the zero-padded millisecond field
	frac := fmt.Sprintf("%03d", ms)[:2]
	return fmt.Sprintf("%02d:%02d:%02d.%s", hours, minutes, seconds, frac)
}

const (
	lapColumnWidth = 20
	lapRowWidth    = 64
)

// FormatLapRow renders a lap list line: index, split and cumulative time,
// each centred in a 20 column field.
func FormatLapRow(index int, lap Lap) string {
	row := strings.Join([]string{
		center(fmt.Sprintf("%02d", index), lapColumnWidth),
		center(FormatElapsed(lap.SplitMs), lapColumnWidth),
		center(FormatElapsed(lap.CumulativeMs), lapColumnWidth),
	}, " ")
	return padLeft(row, lapRowWidth)
}

// LapHeader returns the column header for FormatLapRow output, underlined.
func LapHeader() string {
	header := fmt.Sprintf("%-11s %-22s %-18s", "Lap", "Lap time", "Total time")
	return padLeft(header, 60) + "\n" + strings.Repeat("_", len(header))
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Package report projects a stopwatch session into a summary and encodes it.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/jask/lapclock/internal/stopwatch"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the encodings Write accepts.
var Formats = []string{"text", "json", "yaml", "toml"}

const (
	MarkBest  = "best"
	MarkWorst = "worst"
)

type LapEntry struct {
	Index        int    `json:"index" yaml:"index" toml:"index"`
	Split        string `json:"split" yaml:"split" toml:"split"`
	Cumulative   string `json:"cumulative" yaml:"cumulative" toml:"cumulative"`
	SplitMs      int64  `json:"split_ms" yaml:"split_ms" toml:"split_ms"`
	CumulativeMs int64  `json:"cumulative_ms" yaml:"cumulative_ms" toml:"cumulative_ms"`
	Mark         string `json:"mark,omitempty" yaml:"mark,omitempty" toml:"mark,omitempty"`
}

type Summary struct {
	Session   string     `json:"session" yaml:"session" toml:"session"`
	State     string     `json:"state" yaml:"state" toml:"state"`
	ElapsedMs int64      `json:"elapsed_ms" yaml:"elapsed_ms" toml:"elapsed_ms"`
	Elapsed   string     `json:"elapsed" yaml:"elapsed" toml:"elapsed"`
	Laps      []LapEntry `json:"laps" yaml:"laps" toml:"laps"`
}

// FromEngine builds a summary. Best/worst marks follow the engine's
// highlight threshold.
func FromEngine(e *stopwatch.Engine) Summary {
	laps := e.Laps()
	s := Summary{
		Session:   e.ID().String(),
		State:     e.State().String(),
		ElapsedMs: e.Elapsed(),
		Elapsed:   stopwatch.FormatElapsed(e.Elapsed()),
		Laps:      make([]LapEntry, 0, len(laps)),
	}
	class, marked := e.Highlight()
	for i, l := range laps {
		entry := LapEntry{
			Index:        i,
			Split:        stopwatch.FormatElapsed(l.SplitMs),
			Cumulative:   stopwatch.FormatElapsed(l.CumulativeMs),
			SplitMs:      l.SplitMs,
			CumulativeMs: l.CumulativeMs,
		}
		if marked {
			switch i {
			case class.Best:
				entry.Mark = MarkBest
			case class.Worst:
				entry.Mark = MarkWorst
			}
		}
		s.Laps = append(s.Laps, entry)
	}
	return s
}

// Write encodes s to w in the named format.
func Write(w io.Writer, format string, s Summary) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return writeText(w, s)
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "toml":
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
}

// ValidFormat reports whether Write accepts format.
func ValidFormat(format string) bool {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return true
	}
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

func writeText(w io.Writer, s Summary) error {
	var b strings.Builder
	if len(s.Laps) > 0 {
		b.WriteString(stopwatch.LapHeader())
		b.WriteString("\n")
		for _, l := range s.Laps {
			b.WriteString(stopwatch.FormatLapRow(l.Index, stopwatch.Lap{SplitMs: l.SplitMs, CumulativeMs: l.CumulativeMs}))
			if l.Mark != "" {
				b.WriteString("  " + l.Mark)
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "Total %s (%s)\n", s.Elapsed, s.State)
	_, err := io.WriteString(w, b.String())
	return err
}

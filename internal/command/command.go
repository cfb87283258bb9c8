// Package command names the stopwatch operations a user can trigger and
// resolves typed input to them.
package command

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/lapclock/internal/stopwatch"
)

// ErrUnknownCommand is returned by Resolve when nothing matches.
var ErrUnknownCommand = errors.New("unknown command")

// MaxDistance is the largest edit distance Resolve accepts for a fuzzy match.
const MaxDistance = 2

const (
	IDStart     = "start"
	IDPause     = "pause"
	IDToggle    = "toggle"
	IDLap       = "lap"
	IDReset     = "reset"
	IDSecondary = "secondary"
	IDQuit      = "quit"
)

type Command struct {
	ID          string
	Aliases     []string
	Description string
	Run         func(e *stopwatch.Engine) (string, error)
	Disabled    func(e *stopwatch.Engine) (bool, string)
}

type Registry struct {
	commands []Command
}

func NewRegistry(cmds []Command) *Registry {
	r := &Registry{}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same ID.
func (r *Registry) Register(c Command) {
	if c.ID == "" {
		return
	}
	for i := range r.commands {
		if r.commands[i].ID == c.ID {
			r.commands[i] = c
			return
		}
	}
	r.commands = append(r.commands, c)
}

func (r *Registry) Commands() []Command {
	return slices.Clone(r.commands)
}

// Resolve maps input to a command: exact ID or alias first, then a unique ID
// prefix, then the closest name within MaxDistance edits.
func (r *Registry) Resolve(input string) (Command, error) {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	for _, c := range r.commands {
		if c.ID == q || slices.Contains(c.Aliases, q) {
			return c, nil
		}
	}

	var prefixed []Command
	for _, c := range r.commands {
		if strings.HasPrefix(c.ID, q) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}

	best, bestDist := -1, MaxDistance+1
	for i, c := range r.commands {
		if d := levenshtein.ComputeDistance(q, c.ID); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
	}
	return r.commands[best], nil
}

// Result is a palette entry.
type Result struct {
	ID       string
	Desc     string
	Disabled bool
	Reason   string
}

// Search lists commands whose ID, aliases or description contain query,
// enabled ones first.
func (r *Registry) Search(query string, e *stopwatch.Engine) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Result, 0, len(r.commands))
	for _, c := range r.commands {
		h := strings.ToLower(c.ID + " " + strings.Join(c.Aliases, " ") + " " + c.Description)
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		res := Result{ID: c.ID, Desc: c.Description}
		if c.Disabled != nil && e != nil {
			res.Disabled, res.Reason = c.Disabled(e)
		}
		out = append(out, res)
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Execute runs c against e. Commands without Run (quit) do nothing.
func Execute(c Command, e *stopwatch.Engine) (string, error) {
	if c.Run == nil {
		return "", nil
	}
	return c.Run(e)
}

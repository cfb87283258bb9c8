package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeStopwatch = "stopwatch"
	scopePalette   = "screen:palette"
)

const (
	actionToggle     = "toggle"
	actionSecondary  = "secondary"
	actionLap        = "lap"
	actionPalette    = "palette"
	actionScrollUp   = "scroll-up"
	actionScrollDown = "scroll-down"
	actionQuit       = "quit"
	actionClose      = "close"
	actionSelect     = "select"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to the pressed key in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.Action(msg, scope)
	return ok && got == action
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"space", "s"}, Action: actionToggle, Description: "start/pause", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"enter", "r"}, Action: actionSecondary, Description: "lap/reset", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"l"}, Action: actionLap, Description: "lap", Scopes: []string{scopeStopwatch}},
		{Keys: []string{":"}, Action: actionPalette, Description: "commands", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"k", "up"}, Action: actionScrollUp, Description: "scroll up", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"j", "down"}, Action: actionScrollDown, Description: "scroll down", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeStopwatch}},
		{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopePalette}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "run", Scopes: []string{scopePalette}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

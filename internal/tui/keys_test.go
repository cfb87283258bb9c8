package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, actionSecondary, scopeStopwatch) {
		t.Fatalf("expected enter to be the secondary control")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, actionSelect, scopePalette) {
		t.Fatalf("expected enter to select in the palette")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEsc}, actionClose, scopeStopwatch) {
		t.Fatalf("esc should only close inside the palette")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace}, actionToggle, scopeStopwatch) {
		t.Fatalf("expected space to toggle")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, actionQuit, scopeStopwatch) {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	defaults := DefaultKeyBindings()
	got := ApplyActionKeybindings(defaults, map[string][]string{
		actionQuit: {"ctrl+q"},
		"unknown":  {"z"},
	})
	if len(got) != len(defaults) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(defaults))
	}
	for i, b := range got {
		if b.Action == actionQuit {
			if len(b.Keys) != 1 || b.Keys[0] != "ctrl+q" {
				t.Fatalf("quit keys = %#v, want [ctrl+q]", b.Keys)
			}
			continue
		}
		if len(b.Keys) != len(defaults[i].Keys) {
			t.Fatalf("%s keys changed: %#v", b.Action, b.Keys)
		}
	}
	defaults[0].Keys[0] = "mutated"
	if got[0].Keys[0] == "mutated" {
		t.Fatalf("ApplyActionKeybindings must copy keys")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range reg.BindingsForScope(scopePalette) {
		if b.Action != actionClose && b.Action != actionSelect {
			t.Fatalf("unexpected palette binding %q", b.Action)
		}
	}
	if n := len(reg.BindingsForScope(scopeStopwatch)); n != 7 {
		t.Fatalf("stopwatch bindings = %d, want 7", n)
	}
}

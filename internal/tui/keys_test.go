package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestScreenBindingShadowsAnyScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"c"}, Action: actionCancel, Scopes: []string{scopeDelivery}},
		{Keys: []string{"c", "q"}, Action: actionQuit, Scopes: []string{anyScope}},
	})
	c := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}
	if !reg.IsAction(c, actionCancel, scopeDelivery) {
		t.Fatalf("expected c to cancel on delivery")
	}
	if !reg.IsAction(c, actionQuit, scopeStart) {
		t.Fatalf("expected c to fall through to quit on start")
	}
	if reg.IsAction(c, actionQuit, scopeDelivery) {
		t.Fatalf("delivery binding should shadow quit")
	}
}

func TestHelpListsScreenAndGlobalBindings(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	var actions []string
	for _, b := range reg.Help(scopeSummary) {
		actions = append(actions, b.Action)
	}
	want := []string{actionSubmit, actionCancel, actionBack, actionQuit}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Fatalf("summary help (-want +got):\n%s", diff)
	}
}

func TestDefaultBindingsResolvePerScreen(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	tests := []struct {
		scope string
		msg   tea.KeyMsg
		want  string
		ok    bool
	}{
		{scopeStart, enter, actionSelect, true},
		{scopeSummary, enter, actionSubmit, true},
		{scopeStart, tea.KeyMsg{Type: tea.KeyEsc}, "", false},
		{scopeDelivery, tea.KeyMsg{Type: tea.KeyEsc}, actionBack, true},
		{scopeMeal, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, actionCancel, true},
		{scopeStart, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, "", false},
	}
	for _, tt := range tests {
		got, ok := reg.ActionFor(tt.msg, tt.scope)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ActionFor(%q, %s) = %q,%v want %q,%v", tt.msg.String(), tt.scope, got, ok, tt.want, tt.ok)
		}
	}
}

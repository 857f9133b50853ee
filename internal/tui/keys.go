package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Actions a key can be bound to.
const (
	actionQuit   = "quit"
	actionUp     = "up"
	actionDown   = "down"
	actionSelect = "select"
	actionNext   = "next"
	actionCancel = "cancel"
	actionSubmit = "submit"
	actionBack   = "back"
)

const (
	scopeStart    = "screen:start"
	scopeMeal     = "screen:meal"
	scopeDelivery = "screen:delivery"
	scopeSummary  = "screen:summary"
)

// anyScope marks a binding that applies on every screen.
const anyScope = "*"

// KeyBinding maps keys to an action on the listed screens. No scopes means
// every screen.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions per screen scope. When two
// bindings claim the same key in a scope, the earlier one wins; a screen
// binding shadows an anyScope one.
type KeyRegistry struct {
	bindings []KeyBinding
	index    map[string]map[string]string
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{
		bindings: slices.Clone(bindings),
		index:    make(map[string]map[string]string),
	}
	for _, b := range r.bindings {
		scopes := b.Scopes
		if len(scopes) == 0 {
			scopes = []string{anyScope}
		}
		for _, scope := range scopes {
			keys := r.index[scope]
			if keys == nil {
				keys = make(map[string]string)
				r.index[scope] = keys
			}
			for _, k := range b.Keys {
				k = normalizeKey(k)
				if _, taken := keys[k]; !taken {
					keys[k] = b.Action
				}
			}
		}
	}
	return r
}

// Help lists the bindings shown in the footer for scope.
func (r *KeyRegistry) Help(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if len(b.Scopes) == 0 || slices.Contains(b.Scopes, anyScope) || slices.Contains(b.Scopes, scope) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	k := normalizeKey(msg.String())
	if action, ok := r.index[scope][k]; ok {
		return action, true
	}
	action, ok := r.index[anyScope][k]
	return action, ok
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.ActionFor(msg, scope)
	return ok && got == action
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func DefaultKeyBindings() []KeyBinding {
	lists := []string{scopeStart, scopeMeal, scopeDelivery}
	return []KeyBinding{
		{Keys: []string{"k", "up"}, Action: actionUp, Description: "up", Scopes: lists},
		{Keys: []string{"j", "down"}, Action: actionDown, Description: "down", Scopes: lists},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "select", Scopes: lists},
		{Keys: []string{"n", "tab"}, Action: actionNext, Description: "next", Scopes: []string{scopeMeal, scopeDelivery}},
		{Keys: []string{"s", "enter"}, Action: actionSubmit, Description: "submit", Scopes: []string{scopeSummary}},
		{Keys: []string{"c"}, Action: actionCancel, Description: "cancel", Scopes: []string{scopeMeal, scopeDelivery, scopeSummary}},
		{Keys: []string{"esc", "backspace"}, Action: actionBack, Description: "back", Scopes: []string{scopeMeal, scopeDelivery, scopeSummary}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{anyScope}},
	}
}

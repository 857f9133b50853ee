package flow

import "slices"

// Navigator is the back stack. The last entry is the current screen and
// the stack is never empty.
type Navigator struct {
	items []Screen
}

func NewNavigator(start Screen) *Navigator {
	return &Navigator{items: []Screen{start}}
}

// Navigate pushes screen on top of the stack.
func (n *Navigator) Navigate(screen Screen) {
	n.items = append(n.items, screen)
}

// NavigateUp pops one entry. It reports false at the root.
func (n *Navigator) NavigateUp() bool {
	if !n.CanNavigateBack() {
		return false
	}
	n.items = n.items[:len(n.items)-1]
	return true
}

// PopBackStack pops entries until screen is on top, or until it is removed
// as well when inclusive is set. If screen is not on the stack nothing
// changes and false is returned. The root entry is never removed.
func (n *Navigator) PopBackStack(screen Screen, inclusive bool) bool {
	idx := -1
	for i := len(n.items) - 1; i >= 0; i-- {
		if n.items[i] == screen {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	keep := idx + 1
	if inclusive {
		keep = idx
	}
	if keep < 1 {
		keep = 1
	}
	n.items = n.items[:keep]
	return true
}

func (n *Navigator) Current() Screen {
	return n.items[len(n.items)-1]
}

// CanNavigateBack reports whether there is a previous entry.
func (n *Navigator) CanNavigateBack() bool {
	return len(n.items) > 1
}

// History returns the stack from root to current.
func (n *Navigator) History() []Screen {
	return slices.Clone(n.items)
}

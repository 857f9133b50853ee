package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrNotFound is returned when a name matches nothing in the catalog.
var ErrNotFound = errors.New("not found")

// maxSuggestDistance bounds how far a typo can be from a suggestion.
const maxSuggestDistance = 3

// NotFoundError carries the closest known name, if any.
type NotFoundError struct {
	Kind       string
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// FindRestaurant matches by ID or case-insensitive name.
func FindRestaurant(restaurants []Restaurant, name string) (Restaurant, error) {
	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		if r.ID == name || strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name)) {
			return r.Clone(), nil
		}
		names = append(names, r.Name)
	}
	return Restaurant{}, &NotFoundError{Kind: "restaurant", Name: name, Suggestion: closest(names, name)}
}

// FindItem matches a menu item by ID or case-insensitive name.
func FindItem(items []MenuItem, name string) (MenuItem, error) {
	names := make([]string, 0, len(items))
	for _, it := range items {
		if it.ID == name || strings.EqualFold(strings.TrimSpace(it.Name), strings.TrimSpace(name)) {
			return it, nil
		}
		names = append(names, it.Name)
	}
	return MenuItem{}, &NotFoundError{Kind: "meal", Name: name, Suggestion: closest(names, name)}
}

// FindOption matches one of a fixed set of labels, such as delivery slots.
func FindOption(options []string, label string) (string, error) {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(label)) {
			return opt, nil
		}
	}
	return "", &NotFoundError{Kind: "delivery time", Name: label, Suggestion: closest(options, label)}
}

func closest(candidates []string, name string) string {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToLower(c), query)
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

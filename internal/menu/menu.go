// Package menu holds the read-only restaurant catalog the ordering flow
// picks from.
package menu

import (
	"context"
	"slices"
)

// MenuItem is a single dish on a restaurant's menu.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
}

// Restaurant is a catalog entry with its menu.
type Restaurant struct {
	ID          string
	Name        string
	Description string
	MenuItems   []MenuItem
}

// Clone returns a deep copy so callers cannot mutate catalog data.
func (r Restaurant) Clone() Restaurant {
	r.MenuItems = slices.Clone(r.MenuItems)
	return r
}

// Catalog provides the restaurants on offer. Implementations never
// mutate what they return after the call.
type Catalog interface {
	Restaurants(ctx context.Context) ([]Restaurant, error)
}

// Static is a Catalog backed by a fixed slice.
type Static struct {
	restaurants []Restaurant
}

func NewStatic(restaurants []Restaurant) *Static {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Clone())
	}
	return &Static{restaurants: out}
}

func (s *Static) Restaurants(ctx context.Context) ([]Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r.Clone())
	}
	return out, nil
}

// Builtin returns the default catalog shipped with the app.
func Builtin() *Static {
	return NewStatic(BuiltinRestaurants())
}

// BuiltinRestaurants is the default restaurant list.
func BuiltinRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:          "restaurant-a",
			Name:        "Restaurant A",
			Description: "Burgers, fries and shakes",
			MenuItems: []MenuItem{
				{ID: "a-burger", Name: "Burger", Description: "Beef patty, cheddar, pickles", PriceCents: 800},
				{ID: "a-veggie", Name: "Veggie Burger", Description: "Black bean patty, avocado", PriceCents: 850},
				{ID: "a-fries", Name: "Fries", Description: "Hand cut, sea salt", PriceCents: 350},
				{ID: "a-shake", Name: "Milkshake", Description: "Vanilla or chocolate", PriceCents: 425},
			},
		},
		{
			ID:          "restaurant-b",
			Name:        "Restaurant B",
			Description: "Thai street food",
			MenuItems: []MenuItem{
				{ID: "b-padthai", Name: "Pad Thai", Description: "Rice noodles, tamarind, peanuts", PriceCents: 1100},
				{ID: "b-curry", Name: "Green Curry", Description: "Coconut, basil, jasmine rice", PriceCents: 1225},
				{ID: "b-rolls", Name: "Spring Rolls", Description: "Three rolls, sweet chili", PriceCents: 550},
			},
		},
		{
			ID:          "restaurant-c",
			Name:        "Restaurant C",
			Description: "Wood fired pizza",
			MenuItems: []MenuItem{
				{ID: "c-margherita", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", PriceCents: 1000},
				{ID: "c-caesar", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", PriceCents: 775},
				{ID: "c-tiramisu", Name: "Tiramisu", Description: "Espresso, mascarpone", PriceCents: 600},
			},
		},
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/buffbites/internal/menu"
)

// MenuCatalog serves menu.Catalog from sqlite.
type MenuCatalog struct {
	restaurants *RestaurantRepo
	items       *MenuItemRepo
}

func NewMenuCatalog(db *sql.DB) *MenuCatalog {
	return &MenuCatalog{
		restaurants: NewRestaurantRepo(db),
		items:       NewMenuItemRepo(db),
	}
}

func (c *MenuCatalog) Restaurants(ctx context.Context) ([]menu.Restaurant, error) {
	rows, err := c.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	items, err := c.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	out := make([]menu.Restaurant, 0, len(rows))
	for _, row := range rows {
		r := menu.Restaurant{ID: row.ID, Name: row.Name, Description: row.Description}
		for _, it := range items[row.ID] {
			r.MenuItems = append(r.MenuItems, menu.MenuItem{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				PriceCents:  it.PriceCents,
			})
		}
		out = append(out, r)
	}
	return out, nil
}

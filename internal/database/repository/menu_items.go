package repository

import "context"

// MenuItemRepo handles menu items.
type MenuItemRepo struct {
	db DBTX
}

func NewMenuItemRepo(db DBTX) *MenuItemRepo { return &MenuItemRepo{db: db} }

func (r *MenuItemRepo) Upsert(ctx context.Context, it MenuItem) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO menu_items(id, restaurant_id, name, description, price_cents, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 restaurant_id=excluded.restaurant_id,
	 name=excluded.name,
	 description=excluded.description,
	 price_cents=excluded.price_cents,
	 sort_order=excluded.sort_order;
	`, it.ID, it.RestaurantID, it.Name, it.Description, it.PriceCents, it.SortOrder)
	return err
}

// List returns every item grouped by restaurant id, in menu order.
func (r *MenuItemRepo) List(ctx context.Context) (map[string][]MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, restaurant_id, name, description, price_cents, sort_order
	FROM menu_items
	ORDER BY restaurant_id, sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]MenuItem)
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Description, &it.PriceCents, &it.SortOrder); err != nil {
			return nil, err
		}
		out[it.RestaurantID] = append(out[it.RestaurantID], it)
	}
	return out, rows.Err()
}

func (r *MenuItemRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, restaurant_id, name, description, price_cents, sort_order
	FROM menu_items
	WHERE restaurant_id = ?
	ORDER BY sort_order, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Description, &it.PriceCents, &it.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

package repository

import "context"

// RestaurantRepo handles restaurants.
type RestaurantRepo struct {
	db DBTX
}

func NewRestaurantRepo(db DBTX) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

func (r *RestaurantRepo) Upsert(ctx context.Context, rest Restaurant) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO restaurants(id, name, description, sort_order)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 sort_order=excluded.sort_order;
	`, rest.ID, rest.Name, rest.Description, rest.SortOrder)
	return err
}

func (r *RestaurantRepo) List(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, sort_order FROM restaurants ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Restaurant
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *RestaurantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&n)
	return n, err
}

package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/buffbites/internal/database/repository"
	"github.com/jask/buffbites/internal/menu"
)

// SeedMenu loads restaurants into an empty database. It is idempotent and
// safe to run on every startup; a database that already has restaurants is
// left alone. Catalog IDs are kept so lookups by ID work the same against
// either menu source.
func SeedMenu(ctx context.Context, db *sql.DB, restaurants []menu.Restaurant) error {
	restRepo := repository.NewRestaurantRepo(db)
	n, err := restRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		restaurantsTx := repository.NewRestaurantRepo(tx)
		itemsTx := repository.NewMenuItemRepo(tx)
		for ri, r := range restaurants {
			row := repository.Restaurant{
				ID:          seedID(r.ID, "restaurant:"+r.Name),
				Name:        r.Name,
				Description: r.Description,
				SortOrder:   ri,
			}
			if err := restaurantsTx.Upsert(ctx, row); err != nil {
				return err
			}
			for ii, it := range r.MenuItems {
				item := repository.MenuItem{
					ID:           seedID(it.ID, "menu_item:"+r.Name+"/"+it.Name),
					RestaurantID: row.ID,
					Name:         it.Name,
					Description:  it.Description,
					PriceCents:   it.PriceCents,
					SortOrder:    ii,
				}
				if err := itemsTx.Upsert(ctx, item); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// seedID keeps a catalog ID, or derives a stable one from name when the
// catalog has none.
func seedID(id, name string) string {
	if id != "" {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Restaurant represents a restaurant row.
type Restaurant struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
}

// MenuItem represents a menu_items row.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	PriceCents   int64
	SortOrder    int
}

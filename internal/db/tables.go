package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Tables lists the user tables in the database, sorted by name.
func Tables(ctx context.Context, db *sqlx.DB, driver string) ([]string, error) {
	var query string
	switch driver {
	case "pgx":
		query = `SELECT tablename FROM pg_tables WHERE schemaname = current_schema() ORDER BY tablename`
	case "sqlite":
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	var tables []string
	err := db.SelectContext(ctx, &tables, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

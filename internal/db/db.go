package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type poolConfig struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// SQLite allows one writer at a time, so its pool stays small and
// busy_timeout in the DSN absorbs the remaining lock waits.
var pools = map[string]poolConfig{
	"sqlite": {maxOpen: 4, maxIdle: 4},
	"pgx":    {maxOpen: 25, maxIdle: 5, maxLifetime: 5 * time.Minute},
}

// Init opens and pings the database. The handle is shared by every
// repository until Close.
func Init(ctx context.Context, driver, connection string) (*sqlx.DB, error) {
	pool, ok := pools[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	if driver == "sqlite" {
		err := ensureDataDir(connection)
		if err != nil {
			return nil, err
		}
	}

	db, err := sqlx.ConnectContext(ctx, driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	db.SetMaxOpenConns(pool.maxOpen)
	db.SetMaxIdleConns(pool.maxIdle)
	db.SetConnMaxLifetime(pool.maxLifetime)

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// ensureDataDir creates the directory holding a file-backed SQLite database.
func ensureDataDir(connection string) error {
	path := strings.TrimPrefix(connection, "file:")
	path, _, _ = strings.Cut(path, "?")
	if path == "" || path == ":memory:" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

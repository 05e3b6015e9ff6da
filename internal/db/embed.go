package db

import "embed"

// migrationsFS contains the goose SQL migrations applied by RunMigrations.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

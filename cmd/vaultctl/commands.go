package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/foldervault/internal/app"
	"github.com/templui/foldervault/internal/config"
	"github.com/templui/foldervault/internal/db"
	"github.com/urfave/cli/v3"
)

func sweepCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Delete expired folders, messages and share tokens once",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.SweepService.Sweep(ctx)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			fmt.Printf("deleted %d folders, %d messages, %d share tokens\n",
				result.DeletedFolders, result.DeletedMessages, result.DeletedShareTokens)
			return nil
		},
	}
}

func migrateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or roll back schema migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withDB(ctx, cfg, func(database *sqlx.DB) error {
						err := db.RunMigrations(ctx, database.DB, cfg.DBDriver)
						if err != nil {
							return err
						}
						return printVersion(ctx, database, cfg.DBDriver)
					})
				},
			},
			{
				Name:  "down",
				Usage: "Roll back the most recent migration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withDB(ctx, cfg, func(database *sqlx.DB) error {
						err := db.MigrateDown(ctx, database.DB, cfg.DBDriver)
						if err != nil {
							return err
						}
						return printVersion(ctx, database, cfg.DBDriver)
					})
				},
			},
		},
	}
}

func tablesCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "List the tables in the configured database",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDB(ctx, cfg, func(database *sqlx.DB) error {
				tables, err := db.Tables(ctx, database, cfg.DBDriver)
				if err != nil {
					return err
				}
				for _, table := range tables {
					fmt.Println(table)
				}
				return nil
			})
		},
	}
}

func withDB(ctx context.Context, cfg *config.Config, fn func(*sqlx.DB) error) error {
	database, err := db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer db.Close(database)

	return fn(database)
}

func printVersion(ctx context.Context, database *sqlx.DB, driver string) error {
	version, err := db.Version(ctx, database.DB, driver)
	if err != nil {
		return err
	}
	fmt.Printf("schema version %d\n", version)
	return nil
}

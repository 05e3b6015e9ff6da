package main

import (
	"context"
	"log"
	"os"

	"github.com/templui/foldervault/internal/config"
	"github.com/templui/foldervault/internal/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Service:     "vaultctl",
		Environment: cfg.AppEnv,
		Development: cfg.IsDevelopment(),
	})

	cmd := &cli.Command{
		Name:  "vaultctl",
		Usage: "Maintenance commands for the foldervault database",
		Commands: []*cli.Command{
			sweepCommand(cfg),
			migrateCommand(cfg),
			tablesCommand(cfg),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

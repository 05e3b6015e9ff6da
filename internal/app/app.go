package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/foldervault/internal/config"
	"github.com/templui/foldervault/internal/credential"
	"github.com/templui/foldervault/internal/db"
	"github.com/templui/foldervault/internal/repository"
	"github.com/templui/foldervault/internal/service"
	"github.com/templui/foldervault/internal/telemetry"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	Metrics        *telemetry.Metrics
	FolderService  *service.FolderService
	MessageService *service.MessageService
	ShareService   *service.ShareService
	SweepService   *service.SweepService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	folderRepository := repository.NewFolderRepository(database)
	messageRepository := repository.NewMessageRepository(database)
	shareTokenRepository := repository.NewShareTokenRepository(database)
	sweepRepository := repository.NewSweepRepository(database)

	metrics := telemetry.NewMetrics()
	verifier := credential.NewBcrypt(cfg.BcryptCost)

	// Services
	folderService := service.NewFolderService(folderRepository, verifier, cfg.DefaultLifetimeYears)
	messageService := service.NewMessageService(messageRepository)
	shareService := service.NewShareService(
		shareTokenRepository,
		folderRepository,
		messageService,
		verifier,
		cfg.DefaultLifetimeYears,
	)
	sweepService := service.NewSweepService(sweepRepository, metrics)

	return &App{
		Cfg:            cfg,
		DB:             database,
		Metrics:        metrics,
		FolderService:  folderService,
		MessageService: messageService,
		ShareService:   shareService,
		SweepService:   sweepService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/templui/foldervault/internal/app"
	"github.com/templui/foldervault/internal/config"
	"github.com/templui/foldervault/internal/logger"
	"github.com/templui/foldervault/internal/routes"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Service:     cfg.AppName,
		Environment: cfg.AppEnv,
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
	})
	slog.Debug("config loaded", "config", cfg.Sanitized())

	err := run(cfg)
	if err != nil {
		slog.Error("server failed", "error", err)
	}
	logger.Flush(2 * time.Second)
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.SweepInterval > 0 {
		g.Go(func() error {
			app.SweepService.Run(ctx, cfg.SweepInterval)
			return nil
		})
	}

	return g.Wait()
}

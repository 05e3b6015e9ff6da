package routes

import (
	"net/http"

	"github.com/templui/foldervault/internal/app"
	"github.com/templui/foldervault/internal/handler"
	"github.com/templui/foldervault/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	folder := handler.NewFolderHandler(app.FolderService)
	message := handler.NewMessageHandler(app.FolderService, app.MessageService)
	share := handler.NewShareHandler(app.FolderService, app.ShareService)
	cleanup := handler.NewCleanupHandler(app.SweepService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// ============================================================================
	// FOLDERS (password)
	// ============================================================================

	mux.HandleFunc("POST /api/folders", folder.Create)
	mux.HandleFunc("POST /api/folders/{id}/verify", folder.Verify)

	// Messages
	mux.HandleFunc("POST /api/folders/{id}/messages", message.Add)
	mux.HandleFunc("GET /api/folders/{id}/messages", message.List)
	mux.HandleFunc("PUT /api/folders/{id}/messages/{msgid}", message.Update)
	mux.HandleFunc("DELETE /api/folders/{id}/messages/{msgid}", message.Delete)

	// ============================================================================
	// SHARE TOKENS (bearer)
	// ============================================================================

	mux.HandleFunc("POST /api/folders/{id}/share", share.Issue)
	mux.HandleFunc("GET /api/share/{token}/messages", share.Messages)
	mux.HandleFunc("DELETE /api/share/{token}", share.Revoke)

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("POST /api/cleanup", middleware.RequireBearer(app.Cfg.CleanupToken)(cleanup.Cleanup))
	mux.HandleFunc("GET /health", health.Health)
	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", app.Metrics.Handler())
	}

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		app.Metrics.Instrument,
		middleware.SecurityHeaders,
		middleware.Compress,
		middleware.RequestLogging,
		middleware.RequestTimeout(app.Cfg.RequestTimeout),
		middleware.MaxBodyBytes(app.Cfg.MaxBodyBytes),
	)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/templui/foldervault/internal/service"
)

type CleanupHandler struct {
	sweepService *service.SweepService
}

func NewCleanupHandler(sweepService *service.SweepService) *CleanupHandler {
	return &CleanupHandler{
		sweepService: sweepService,
	}
}

func (h *CleanupHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	result, err := h.sweepService.Sweep(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("manual cleanup",
		"deleted_folders", result.DeletedFolders,
		"deleted_messages", result.DeletedMessages,
		"deleted_share_tokens", result.DeletedShareTokens,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"deletedMessages":    result.DeletedMessages,
		"deletedFolders":     result.DeletedFolders,
		"deletedShareTokens": result.DeletedShareTokens,
	})
}

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.db.PingContext(r.Context())
	if err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

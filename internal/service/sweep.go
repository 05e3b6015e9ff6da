package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/foldervault/internal/repository"
)

type SweepResult struct {
	DeletedMessages    int64
	DeletedFolders     int64
	DeletedShareTokens int64
}

// SweepRecorder observes sweep runs.
type SweepRecorder interface {
	RecordSweep(result SweepResult, duration time.Duration, err error)
}

type SweepService struct {
	repo     repository.SweepRepository
	recorder SweepRecorder
	now      func() time.Time
}

func NewSweepService(repo repository.SweepRepository, recorder SweepRecorder) *SweepService {
	return &SweepService{
		repo:     repo,
		recorder: recorder,
		now:      time.Now,
	}
}

// Sweep purges every folder whose expires_at is at or before now, along with
// its messages and share tokens. Running it again without time passing is a no-op.
func (s *SweepService) Sweep(ctx context.Context) (SweepResult, error) {
	start := time.Now()

	counts, err := s.repo.DeleteExpired(ctx, s.now().Unix())
	result := SweepResult{
		DeletedMessages:    counts.Messages,
		DeletedFolders:     counts.Folders,
		DeletedShareTokens: counts.ShareTokens,
	}
	if err != nil {
		err = fmt.Errorf("failed to sweep expired folders: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordSweep(result, time.Since(start), err)
	}

	if err != nil {
		return SweepResult{}, err
	}
	return result, nil
}

// Run sweeps once immediately and then every interval until ctx is done.
// Runs never overlap.
func (s *SweepService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *SweepService) runOnce(ctx context.Context) {
	result, err := s.Sweep(ctx)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		return
	}

	if result.DeletedFolders > 0 || result.DeletedMessages > 0 || result.DeletedShareTokens > 0 {
		slog.Info("sweep completed",
			"deleted_folders", result.DeletedFolders,
			"deleted_messages", result.DeletedMessages,
			"deleted_share_tokens", result.DeletedShareTokens,
		)
	}
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/foldervault/internal/credential"
	"github.com/templui/foldervault/internal/expiry"
	"github.com/templui/foldervault/internal/model"
	"github.com/templui/foldervault/internal/repository"
)

// ShareService issues and resolves share tokens. A token is a capability:
// reading through it needs neither the folder password nor a folder expiry check.
type ShareService struct {
	tokenRepo      repository.ShareTokenRepository
	folderRepo     repository.FolderRepository
	messageService *MessageService
	verifier       credential.Verifier
	defaultYears   int
	now            func() time.Time
}

func NewShareService(
	tokenRepo repository.ShareTokenRepository,
	folderRepo repository.FolderRepository,
	messageService *MessageService,
	verifier credential.Verifier,
	defaultYears int,
) *ShareService {
	return &ShareService{
		tokenRepo:      tokenRepo,
		folderRepo:     folderRepo,
		messageService: messageService,
		verifier:       verifier,
		defaultYears:   defaultYears,
		now:            time.Now,
	}
}

// Issue mints a token for the folder. Its expiry is independent of the
// folder's and may outlast it.
func (s *ShareService) Issue(ctx context.Context, folder AuthorizedFolder, years expiry.Years) (*model.ShareToken, error) {
	if !folder.valid() {
		return nil, ErrBadPassword
	}

	lifetime, err := years.Lifetime(s.defaultYears)
	if err != nil {
		return nil, validationError(err)
	}

	value, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	token := &model.ShareToken{
		Token:     value,
		FolderID:  folder.ID(),
		ExpiresAt: expiry.Deadline(s.now(), lifetime),
	}

	err = s.tokenRepo.Create(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create share token: %w", err)
	}

	slog.Info("share token issued", "folder_id", token.FolderID, "expires_at", token.ExpiresAt)
	return token, nil
}

// ReadViaToken returns the messages of the token's folder, newest first.
// Absent and expired tokens are reported identically.
func (s *ShareService) ReadViaToken(ctx context.Context, token string) (*model.ShareToken, []*model.Message, error) {
	t, err := s.tokenRepo.ByToken(ctx, token)
	if errors.Is(err, repository.ErrShareTokenNotFound) {
		return nil, nil, ErrShareTokenNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get share token: %w", err)
	}

	if t.IsExpired(s.now()) {
		return nil, nil, ErrShareTokenNotFound
	}

	messages, err := s.messageService.messages(ctx, t.FolderID)
	if err != nil {
		return nil, nil, err
	}

	return t, messages, nil
}

// Revoke deletes a token after checking the owning folder's password.
// Expired tokens can still be revoked.
func (s *ShareService) Revoke(ctx context.Context, token, password string) error {
	t, err := s.tokenRepo.ByToken(ctx, token)
	if errors.Is(err, repository.ErrShareTokenNotFound) {
		return ErrShareTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get share token: %w", err)
	}

	folder, err := s.folderRepo.ByID(ctx, t.FolderID)
	if errors.Is(err, repository.ErrFolderNotFound) {
		return ErrFolderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get folder: %w", err)
	}

	if !s.verifier.Verify(password, folder.PasswordHash) {
		return ErrBadPassword
	}

	err = s.tokenRepo.Delete(ctx, token)
	if errors.Is(err, repository.ErrShareTokenNotFound) {
		return ErrShareTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete share token: %w", err)
	}

	slog.Info("share token revoked", "folder_id", t.FolderID)
	return nil
}

// generateToken returns 32 random bytes, hex encoded.
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

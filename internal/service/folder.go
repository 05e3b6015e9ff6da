package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/foldervault/internal/credential"
	"github.com/templui/foldervault/internal/expiry"
	"github.com/templui/foldervault/internal/model"
	"github.com/templui/foldervault/internal/repository"
	"github.com/templui/foldervault/internal/validation"
)

// AuthorizedFolder is a folder that was found unexpired and whose password
// matched. It can only be obtained from FolderService.ResolveAuthorized.
type AuthorizedFolder struct {
	folder *model.Folder
}

func (a AuthorizedFolder) ID() string {
	if a.folder == nil {
		return ""
	}
	return a.folder.ID
}

func (a AuthorizedFolder) ExpiresAt() int64 {
	if a.folder == nil {
		return 0
	}
	return a.folder.ExpiresAt
}

func (a AuthorizedFolder) valid() bool {
	return a.folder != nil
}

type FolderService struct {
	repo         repository.FolderRepository
	verifier     credential.Verifier
	defaultYears int
	now          func() time.Time
}

func NewFolderService(repo repository.FolderRepository, verifier credential.Verifier, defaultYears int) *FolderService {
	return &FolderService{
		repo:         repo,
		verifier:     verifier,
		defaultYears: defaultYears,
		now:          time.Now,
	}
}

// Create stores a new folder expiring years from now. Unset, negative or
// non-finite lifetimes use the configured default. The name is stored as given.
func (s *FolderService) Create(ctx context.Context, name, password string, years expiry.Years) (*model.Folder, error) {
	err := validation.ValidateFolderPassword(password)
	if err != nil {
		return nil, validationError(err)
	}

	err = validation.ValidateFolderName(name)
	if err != nil {
		return nil, validationError(err)
	}

	lifetime, err := years.Lifetime(s.defaultYears)
	if err != nil {
		return nil, validationError(err)
	}

	passwordHash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	folder := &model.Folder{
		ID:           uuid.New().String(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now.Unix(),
		ExpiresAt:    expiry.Deadline(now, lifetime),
	}

	err = s.repo.Create(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	slog.Info("folder created", "folder_id", folder.ID, "expires_at", folder.ExpiresAt)
	return folder, nil
}

// ResolveAuthorized is the gate in front of every folder-scoped operation.
// Absent and expired folders are reported identically.
func (s *FolderService) ResolveAuthorized(ctx context.Context, folderID, password string) (AuthorizedFolder, error) {
	folder, err := s.repo.ByID(ctx, folderID)
	if errors.Is(err, repository.ErrFolderNotFound) {
		return AuthorizedFolder{}, ErrFolderNotFound
	}
	if err != nil {
		return AuthorizedFolder{}, fmt.Errorf("failed to get folder: %w", err)
	}

	if folder.IsExpired(s.now()) {
		return AuthorizedFolder{}, ErrFolderNotFound
	}

	if !s.verifier.Verify(password, folder.PasswordHash) {
		slog.Debug("folder password mismatch", "folder_id", folderID)
		return AuthorizedFolder{}, ErrBadPassword
	}

	return AuthorizedFolder{folder: folder}, nil
}

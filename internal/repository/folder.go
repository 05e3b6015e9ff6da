package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/foldervault/internal/model"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
)

type FolderRepository interface {
	Create(ctx context.Context, folder *model.Folder) error
	ByID(ctx context.Context, folderID string) (*model.Folder, error)
}

type folderRepository struct {
	db *sqlx.DB
}

func NewFolderRepository(db *sqlx.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(ctx context.Context, folder *model.Folder) error {
	query := `INSERT INTO folders (id, name, password_hash, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		folder.ID,
		folder.Name,
		folder.PasswordHash,
		folder.CreatedAt,
		folder.ExpiresAt,
	)

	return err
}

// ByID returns the folder row regardless of expiry. Callers apply the expiry policy.
func (r *folderRepository) ByID(ctx context.Context, folderID string) (*model.Folder, error) {
	folder := &model.Folder{}
	query := `SELECT id, name, password_hash, created_at, expires_at FROM folders WHERE id = $1`

	err := r.db.GetContext(ctx, folder, query, folderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFolderNotFound
	}
	if err != nil {
		return nil, err
	}

	return folder, nil
}

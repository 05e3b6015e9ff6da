package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/foldervault/internal/model"
)

var (
	ErrShareTokenNotFound = errors.New("share token not found")
)

type ShareTokenRepository interface {
	Create(ctx context.Context, token *model.ShareToken) error
	ByToken(ctx context.Context, token string) (*model.ShareToken, error)
	Delete(ctx context.Context, token string) error
}

type shareTokenRepository struct {
	db *sqlx.DB
}

func NewShareTokenRepository(db *sqlx.DB) ShareTokenRepository {
	return &shareTokenRepository{db: db}
}

func (r *shareTokenRepository) Create(ctx context.Context, token *model.ShareToken) error {
	query := `INSERT INTO share_tokens (token, folder_id, expires_at) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, token.Token, token.FolderID, token.ExpiresAt)
	return err
}

// ByToken returns the token row even when it has expired.
func (r *shareTokenRepository) ByToken(ctx context.Context, token string) (*model.ShareToken, error) {
	var t model.ShareToken
	query := `SELECT token, folder_id, expires_at FROM share_tokens WHERE token = $1`

	err := r.db.GetContext(ctx, &t, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShareTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Delete removes the token. Only the first of two concurrent deletes succeeds;
// the second gets ErrShareTokenNotFound.
func (r *shareTokenRepository) Delete(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM share_tokens WHERE token = $1`, token)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrShareTokenNotFound
	}

	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/foldervault/internal/model"
)

var (
	ErrMessageNotFound = errors.New("message not found")
)

// MessageRepository stores messages. Every lookup is keyed by folder and
// message id together so ids from another folder never match.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Messages(ctx context.Context, folderID string) ([]*model.Message, error)
	UpdateContent(ctx context.Context, folderID, messageID, content string, updatedAt int64) error
	Delete(ctx context.Context, folderID, messageID string) error
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts the message with the next seq of its folder, so messages
// added within the same second still list in insertion order.
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `INSERT INTO messages (id, folder_id, content, created_at, updated_at, seq)
	          VALUES ($1, $2, $3, $4, $5,
	                  (SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE folder_id = $2))`

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.FolderID,
		message.Content,
		message.CreatedAt,
		message.UpdatedAt,
	)

	return err
}

// Messages returns the folder's messages, newest first. Messages sharing a
// created_at are ordered by seq.
func (r *messageRepository) Messages(ctx context.Context, folderID string) ([]*model.Message, error) {
	messages := []*model.Message{}
	query := `SELECT id, folder_id, content, created_at, updated_at
	          FROM messages WHERE folder_id = $1
	          ORDER BY created_at DESC, seq DESC`

	err := r.db.SelectContext(ctx, &messages, query, folderID)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *messageRepository) UpdateContent(ctx context.Context, folderID, messageID, content string, updatedAt int64) error {
	query := `UPDATE messages
	          SET content = $1, updated_at = $2
	          WHERE id = $3 AND folder_id = $4`

	result, err := r.db.ExecContext(ctx, query, content, updatedAt, messageID, folderID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (r *messageRepository) Delete(ctx context.Context, folderID, messageID string) error {
	query := `DELETE FROM messages WHERE id = $1 AND folder_id = $2`
	result, err := r.db.ExecContext(ctx, query, messageID, folderID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMessageNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SweepCounts reports how many rows a sweep removed from each table.
type SweepCounts struct {
	Messages    int64
	ShareTokens int64
	Folders     int64
}

type SweepRepository interface {
	DeleteExpired(ctx context.Context, now int64) (SweepCounts, error)
}

type sweepRepository struct {
	db *sqlx.DB
}

func NewSweepRepository(db *sqlx.DB) SweepRepository {
	return &sweepRepository{db: db}
}

// DeleteExpired removes every folder with expires_at <= now together with its
// messages and share tokens. Children are deleted before their folders so an
// interrupted run never leaves rows pointing at a missing folder.
func (r *sweepRepository) DeleteExpired(ctx context.Context, now int64) (SweepCounts, error) {
	var counts SweepCounts

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, err
	}
	defer tx.Rollback()

	steps := []struct {
		table string
		query string
		count *int64
	}{
		{
			table: "messages",
			query: `DELETE FROM messages WHERE folder_id IN (SELECT id FROM folders WHERE expires_at <= $1)`,
			count: &counts.Messages,
		},
		{
			table: "share_tokens",
			query: `DELETE FROM share_tokens WHERE folder_id IN (SELECT id FROM folders WHERE expires_at <= $1)`,
			count: &counts.ShareTokens,
		},
		{
			table: "folders",
			query: `DELETE FROM folders WHERE expires_at <= $1`,
			count: &counts.Folders,
		},
	}

	for _, step := range steps {
		result, err := tx.ExecContext(ctx, step.query, now)
		if err != nil {
			return SweepCounts{}, fmt.Errorf("failed to sweep %s: %w", step.table, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return SweepCounts{}, err
		}
		*step.count = rows
	}

	err = tx.Commit()
	if err != nil {
		return SweepCounts{}, err
	}

	return counts, nil
}

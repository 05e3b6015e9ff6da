package model

import (
	"time"

	"github.com/templui/foldervault/internal/expiry"
)

// Folder is a password-protected container of messages. Timestamps are Unix seconds.
type Folder struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
	ExpiresAt    int64  `db:"expires_at"`
}

func (f *Folder) IsExpired(now time.Time) bool {
	return expiry.IsExpired(f.ExpiresAt, now)
}

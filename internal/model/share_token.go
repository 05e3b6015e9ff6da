package model

import (
	"time"

	"github.com/templui/foldervault/internal/expiry"
)

// ShareToken is a bearer credential granting read access to one folder's messages.
type ShareToken struct {
	Token     string `db:"token"`
	FolderID  string `db:"folder_id"`
	ExpiresAt int64  `db:"expires_at"`
}

func (t *ShareToken) IsExpired(now time.Time) bool {
	return expiry.IsExpired(t.ExpiresAt, now)
}

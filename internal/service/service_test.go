package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/templui/foldervault/internal/credential"
	"github.com/templui/foldervault/internal/db"
	"github.com/templui/foldervault/internal/expiry"
	"github.com/templui/foldervault/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type testServices struct {
	folders  *FolderService
	messages *MessageService
	shares   *ShareService
	sweep    *SweepService
	clock    *testClock
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	database, err := db.Init(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.RunMigrations(context.Background(), database.DB, "sqlite"))

	verifier := credential.NewBcrypt(bcrypt.MinCost)
	folderRepo := repository.NewFolderRepository(database)
	messages := NewMessageService(repository.NewMessageRepository(database))

	s := &testServices{
		folders:  NewFolderService(folderRepo, verifier, 5),
		messages: messages,
		shares:   NewShareService(repository.NewShareTokenRepository(database), folderRepo, messages, verifier, 5),
		sweep:    NewSweepService(repository.NewSweepRepository(database), nil),
		clock:    &testClock{t: time.Unix(1_700_000_000, 0)},
	}
	s.folders.now = s.clock.now
	s.messages.now = s.clock.now
	s.shares.now = s.clock.now
	s.sweep.now = s.clock.now

	return s
}

func (s *testServices) authorized(t *testing.T, name, password string) AuthorizedFolder {
	t.Helper()
	ctx := context.Background()

	folder, err := s.folders.Create(ctx, name, password, expiry.YearsOf(5))
	require.NoError(t, err)

	authorized, err := s.folders.ResolveAuthorized(ctx, folder.ID, password)
	require.NoError(t, err)
	return authorized
}

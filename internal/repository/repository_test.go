package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/foldervault/internal/db"
	"github.com/templui/foldervault/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	database, err := db.Init(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	require.NoError(t, db.RunMigrations(context.Background(), database.DB, "sqlite"))
	return database
}

func createFolder(t *testing.T, repo FolderRepository, createdAt, expiresAt int64) *model.Folder {
	t.Helper()

	folder := &model.Folder{
		ID:           uuid.New().String(),
		Name:         "notes",
		PasswordHash: "hash",
		CreatedAt:    createdAt,
		ExpiresAt:    expiresAt,
	}
	require.NoError(t, repo.Create(context.Background(), folder))
	return folder
}

func createMessage(t *testing.T, repo MessageRepository, folderID, content string, at int64) *model.Message {
	t.Helper()

	message := &model.Message{
		ID:        uuid.New().String(),
		FolderID:  folderID,
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), message))
	return message
}

func TestFolderCreateAndByID(t *testing.T) {
	database := newTestDB(t)
	repo := NewFolderRepository(database)
	ctx := context.Background()

	folder := createFolder(t, repo, 100, 200)

	got, err := repo.ByID(ctx, folder.ID)
	require.NoError(t, err)
	require.Equal(t, folder, got)

	_, err = repo.ByID(ctx, uuid.New().String())
	require.ErrorIs(t, err, ErrFolderNotFound)
}

func TestMessagesOrderedNewestFirst(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	messages := NewMessageRepository(database)
	ctx := context.Background()

	folder := createFolder(t, folders, 100, 10_000)
	first := createMessage(t, messages, folder.ID, "first", 101)
	second := createMessage(t, messages, folder.ID, "second", 102)
	third := createMessage(t, messages, folder.ID, "third", 103)

	got, err := messages.Messages(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, third.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)
	require.Equal(t, first.ID, got[2].ID)
}

func TestMessagesSameSecondKeepInsertionOrder(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	messages := NewMessageRepository(database)
	ctx := context.Background()

	folder := createFolder(t, folders, 100, 10_000)
	other := createFolder(t, folders, 100, 10_000)

	var want []string
	for i := range 5 {
		message := createMessage(t, messages, folder.ID, fmt.Sprintf("m%d", i), 101)
		want = append([]string{message.ID}, want...)
		createMessage(t, messages, other.ID, "noise", 101)
	}

	got, err := messages.Messages(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, got, 5)

	var ids []string
	for _, message := range got {
		ids = append(ids, message.ID)
	}
	require.Equal(t, want, ids)
}

func TestMessagesEmptyFolder(t *testing.T) {
	database := newTestDB(t)
	folder := createFolder(t, NewFolderRepository(database), 100, 200)

	got, err := NewMessageRepository(database).Messages(context.Background(), folder.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMessageCreateRequiresFolder(t *testing.T) {
	database := newTestDB(t)

	err := NewMessageRepository(database).Create(context.Background(), &model.Message{
		ID:       uuid.New().String(),
		FolderID: "missing",
		Content:  "orphan",
	})
	require.Error(t, err)
}

func TestMessageUpdateScopedToFolder(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	messages := NewMessageRepository(database)
	ctx := context.Background()

	a := createFolder(t, folders, 100, 10_000)
	b := createFolder(t, folders, 100, 10_000)
	msg := createMessage(t, messages, a.ID, "original", 101)

	err := messages.UpdateContent(ctx, b.ID, msg.ID, "hijacked", 150)
	require.ErrorIs(t, err, ErrMessageNotFound)

	err = messages.UpdateContent(ctx, a.ID, msg.ID, "edited", 150)
	require.NoError(t, err)

	got, err := messages.Messages(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "edited", got[0].Content)
	require.Equal(t, int64(101), got[0].CreatedAt)
	require.Equal(t, int64(150), got[0].UpdatedAt)
}

func TestMessageDeleteScopedToFolder(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	messages := NewMessageRepository(database)
	ctx := context.Background()

	a := createFolder(t, folders, 100, 10_000)
	b := createFolder(t, folders, 100, 10_000)
	msg := createMessage(t, messages, a.ID, "keep me", 101)

	require.ErrorIs(t, messages.Delete(ctx, b.ID, msg.ID), ErrMessageNotFound)
	require.NoError(t, messages.Delete(ctx, a.ID, msg.ID))
	require.ErrorIs(t, messages.Delete(ctx, a.ID, msg.ID), ErrMessageNotFound)
}

func TestShareTokenLifecycle(t *testing.T) {
	database := newTestDB(t)
	folder := createFolder(t, NewFolderRepository(database), 100, 200)
	tokens := NewShareTokenRepository(database)
	ctx := context.Background()

	token := &model.ShareToken{Token: "abc", FolderID: folder.ID, ExpiresAt: 50}
	require.NoError(t, tokens.Create(ctx, token))

	got, err := tokens.ByToken(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, token, got)

	require.NoError(t, tokens.Delete(ctx, "abc"))
	require.ErrorIs(t, tokens.Delete(ctx, "abc"), ErrShareTokenNotFound)

	_, err = tokens.ByToken(ctx, "abc")
	require.ErrorIs(t, err, ErrShareTokenNotFound)
}

func TestSweepDeletesExpiredFoldersAndChildren(t *testing.T) {
	database := newTestDB(t)
	folders := NewFolderRepository(database)
	messages := NewMessageRepository(database)
	tokens := NewShareTokenRepository(database)
	sweep := NewSweepRepository(database)
	ctx := context.Background()

	expired := createFolder(t, folders, 100, 500)
	boundary := createFolder(t, folders, 100, 1000)
	live := createFolder(t, folders, 100, 5000)

	createMessage(t, messages, expired.ID, "old", 101)
	createMessage(t, messages, expired.ID, "older", 102)
	createMessage(t, messages, boundary.ID, "edge", 103)
	createMessage(t, messages, live.ID, "fresh", 104)
	require.NoError(t, tokens.Create(ctx, &model.ShareToken{Token: "t1", FolderID: expired.ID, ExpiresAt: 9000}))
	require.NoError(t, tokens.Create(ctx, &model.ShareToken{Token: "t2", FolderID: live.ID, ExpiresAt: 9000}))

	counts, err := sweep.DeleteExpired(ctx, 1000)
	require.NoError(t, err)
	require.Equal(t, SweepCounts{Messages: 3, ShareTokens: 1, Folders: 2}, counts)

	_, err = folders.ByID(ctx, expired.ID)
	require.ErrorIs(t, err, ErrFolderNotFound)
	_, err = folders.ByID(ctx, boundary.ID)
	require.ErrorIs(t, err, ErrFolderNotFound)
	_, err = tokens.ByToken(ctx, "t1")
	require.ErrorIs(t, err, ErrShareTokenNotFound)

	remaining, err := messages.Messages(ctx, live.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	_, err = tokens.ByToken(ctx, "t2")
	require.NoError(t, err)

	counts, err = sweep.DeleteExpired(ctx, 1000)
	require.NoError(t, err)
	require.Equal(t, SweepCounts{}, counts)
}

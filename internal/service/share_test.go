package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/templui/foldervault/internal/expiry"
)

func TestShareIssueAndRead(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	folder := s.authorized(t, "shared", "pw")

	_, err := s.messages.Add(ctx, folder, "one")
	require.NoError(t, err)
	s.clock.advance(time.Second)
	_, err = s.messages.Add(ctx, folder, "two")
	require.NoError(t, err)

	token, err := s.shares.Issue(ctx, folder, expiry.YearsOf(1))
	require.NoError(t, err)
	require.Len(t, token.Token, 64)
	require.NotEqual(t, folder.ID(), token.Token)
	require.Equal(t, s.clock.t.Unix()+expiry.SecondsPerYear, token.ExpiresAt)

	got, shared, err := s.shares.ReadViaToken(ctx, token.Token)
	require.NoError(t, err)
	require.Equal(t, token.ExpiresAt, got.ExpiresAt)

	listed, err := s.messages.List(ctx, folder)
	require.NoError(t, err)
	require.Equal(t, listed, shared)
}

func TestShareTokenMayOutliveFolder(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	created, err := s.folders.Create(ctx, "", "pw", expiry.YearsOf(1))
	require.NoError(t, err)
	folder, err := s.folders.ResolveAuthorized(ctx, created.ID, "pw")
	require.NoError(t, err)

	token, err := s.shares.Issue(ctx, folder, expiry.YearsOf(10))
	require.NoError(t, err)
	require.Greater(t, token.ExpiresAt, folder.ExpiresAt())

	// Past the folder's expiry but before a sweep, the token still reads.
	s.clock.t = time.Unix(folder.ExpiresAt()+1, 0)
	_, err = s.folders.ResolveAuthorized(ctx, created.ID, "pw")
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.NoError(t, err)

	// The sweep removes the token along with its folder.
	result, err := s.sweep.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.DeletedShareTokens)

	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShareDefaultLifetime(t *testing.T) {
	s := newTestServices(t)
	folder := s.authorized(t, "", "pw")

	token, err := s.shares.Issue(context.Background(), folder, expiry.YearsOf(-1))
	require.NoError(t, err)
	require.Equal(t, s.clock.t.Unix()+5*expiry.SecondsPerYear, token.ExpiresAt)
}

func TestShareIssueRejectsHugeLifetime(t *testing.T) {
	s := newTestServices(t)
	folder := s.authorized(t, "", "pw")

	for _, years := range []float64{3e11, 1e300} {
		_, err := s.shares.Issue(context.Background(), folder, expiry.YearsOf(years))
		require.ErrorIs(t, err, ErrValidation, years)
	}
}

func TestShareIssueRequiresAuthorizedFolder(t *testing.T) {
	s := newTestServices(t)

	_, err := s.shares.Issue(context.Background(), AuthorizedFolder{}, expiry.YearsOf(1))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestShareReadExpiredToken(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	folder := s.authorized(t, "", "pw")

	token, err := s.shares.Issue(ctx, folder, expiry.YearsOf(0))
	require.NoError(t, err)

	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.NoError(t, err)

	s.clock.advance(time.Second)
	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.shares.ReadViaToken(ctx, "unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShareRevoke(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	folder := s.authorized(t, "", "pw")

	token, err := s.shares.Issue(ctx, folder, expiry.YearsOf(1))
	require.NoError(t, err)

	err = s.shares.Revoke(ctx, token.Token, "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.NoError(t, err)

	require.NoError(t, s.shares.Revoke(ctx, token.Token, "pw"))

	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.ErrorIs(t, err, ErrNotFound)

	err = s.shares.Revoke(ctx, token.Token, "pw")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShareRevokeExpiredToken(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	folder := s.authorized(t, "", "pw")

	token, err := s.shares.Issue(ctx, folder, expiry.YearsOf(0))
	require.NoError(t, err)

	s.clock.advance(time.Minute)
	_, _, err = s.shares.ReadViaToken(ctx, token.Token)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.shares.Revoke(ctx, token.Token, "pw"))
}

package credential

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)

	hash, err := v.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.True(t, v.Verify("correct horse", hash))
	require.False(t, v.Verify("battery staple", hash))
}

func TestVerifyEmptyPassword(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)

	hash, err := v.Hash("secret")
	require.NoError(t, err)

	require.False(t, v.Verify("", hash))
}

func TestVerifyMalformedHash(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)

	require.False(t, v.Verify("secret", "not-a-hash"))
	require.False(t, v.Verify("", ""))
}

func TestHashIsSalted(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)

	a, err := v.Hash("same")
	require.NoError(t, err)
	b, err := v.Hash("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestNewBcryptClampsCost(t *testing.T) {
	v := NewBcrypt(0).(*bcryptVerifier)
	require.Equal(t, bcrypt.DefaultCost, v.cost)

	v = NewBcrypt(bcrypt.MaxCost + 1).(*bcryptVerifier)
	require.Equal(t, bcrypt.DefaultCost, v.cost)
}

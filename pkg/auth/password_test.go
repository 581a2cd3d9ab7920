package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("secreto123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("otro-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("secreto123")
	require.NoError(t, err)

	second, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	_, err := VerifyPassword("secreto123", "не хеш")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

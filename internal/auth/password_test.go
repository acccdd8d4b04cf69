package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("kalye123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "kalye123", hash)
	assert.True(t, CheckPassword("kalye123", hash))
	assert.False(t, CheckPassword("kalye124", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	// Different salts, both still verify
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("same-password", h1))
	assert.True(t, CheckPassword("same-password", h2))
}

func TestIsHashed(t *testing.T) {
	hash, err := HashPassword("plain")
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.True(t, IsHashed("$2b$10$abcdefghijklmnopqrstuv"))
	assert.False(t, IsHashed("plain"))
	assert.False(t, IsHashed(""))
	assert.False(t, IsHashed("$1$legacy"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "WrongPassword1"))
	assert.False(t, CheckPassword("", "Sup3rSecret"))
}

func TestSignAndParseJWT(t *testing.T) {
	token, err := SignJWT("test-secret", "user-123", "freelancer", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "freelancer", claims.Role)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := SignJWT("test-secret", "user-123", "client", 60)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.Error(t, err)
}

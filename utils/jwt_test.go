package utils

import (
	"testing"
	"time"

	"darsehha/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("jane@example.com", "Jane Doe", false, time.Hour)
	require.NoError(t, err)

	email, name, isAdmin, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
	assert.Equal(t, "Jane Doe", name)
	assert.False(t, isAdmin)
}

func TestTokenCarriesAdminClaim(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("admin@darsehha.com", "Admin", true, time.Hour)
	require.NoError(t, err)

	_, _, isAdmin, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("jane@example.com", "Jane Doe", false, -time.Minute)
	require.NoError(t, err)

	_, _, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("jane@example.com", "Jane Doe", false, time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "another-secret"
	_, _, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "a@example.com", "admin", "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "a@example.com", "user", "secret", 60)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	require.Error(t, err)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(42, "secret", 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestRefreshToken_CarriesOnlyUserID(t *testing.T) {
	refresh, err := GenerateRefreshToken(42, "secret", 7)
	require.NoError(t, err)

	// A refresh token parses as an access token but carries no identity
	// claims beyond the user id.
	claims, err := ValidateToken(refresh, "secret")
	require.NoError(t, err)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

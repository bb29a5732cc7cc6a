package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key-keep-it-long-enough"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(7, "ada@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "ada@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(7, "ada@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestTokensGetUniqueIDs(t *testing.T) {
	first, err := GenerateToken(7, "ada@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken(7, "ada@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	firstClaims, err := ParseToken(first, testSecret)
	require.NoError(t, err)
	secondClaims, err := ParseToken(second, testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

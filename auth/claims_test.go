package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseClaims(t *testing.T) {
	issued := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "api-user",
		Issuer:    "bestbuy",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := ParseClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "api-user", claims.Subject)
	assert.Equal(t, "bestbuy", claims.Issuer)
	assert.True(t, issued.Equal(claims.IssuedAt))
	assert.True(t, issued.Add(time.Hour).Equal(claims.ExpiresAt))
}

func Test_ParseClaims_expired_token_still_parses(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseClaims(signed)
	assert.NoError(t, err)
}

func Test_ParseClaims_opaque(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

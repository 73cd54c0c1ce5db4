package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims := token.PrivateClaims()
	assert.Equal(t, "42", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessTokenUniqueJTI(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	first, _, err := svc.GenerateAccessToken(1, "alice")
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(1, "alice")
	assert.Error(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("a-different-secret", "1h")

	tokenString, _, err := svc.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	id, ok := UserIDFromClaims(map[string]interface{}{"user_id": "42"})
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = UserIDFromClaims(map[string]interface{}{"user_id": 42})
	assert.False(t, ok)

	_, ok = UserIDFromClaims(map[string]interface{}{"user_id": "not-a-number"})
	assert.False(t, ok)

	_, ok = UserIDFromClaims(map[string]interface{}{})
	assert.False(t, ok)
}

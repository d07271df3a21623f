package jwtservice

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret")

	token, err := svc.GenerateJWT(jwt.MapClaims{"email": "a@x.com", "name": "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "Alice", claims["name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim missing")
	assert.InDelta(t, time.Now().Add(TokenTTL).Unix(), int64(exp), 5)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := New("test-secret").GenerateJWT(jwt.MapClaims{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = New("other-secret").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString(secret)
	require.NoError(t, err)

	_, err = New("test-secret").ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateRejectsMalformed(t *testing.T) {
	_, err := New("test-secret").ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsUnsignedAlg(t *testing.T) {
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@x.com"})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test-secret").ValidateJWT(token)
	assert.Error(t, err)
}

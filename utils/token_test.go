package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abishek-KS6/HomeBuddy/models"
)

var testSecret = []byte("test_secret")

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestCreateAccessToken(t *testing.T) {
	user := &models.User{ID: 42, Email: "pat@example.com", Role: models.RoleProvider}

	tokenString, err := CreateAccessToken(user, testSecret)
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "pat@example.com", claims["email"])
	assert.Equal(t, "provider", claims["role"])

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(AccessTokenTTL).Unix(), exp, 5)
}

func TestCreateRefreshTokenCarriesNoRole(t *testing.T) {
	user := &models.User{ID: 7, Email: "sam@example.com", Role: models.RoleCustomer}

	tokenString, err := CreateRefreshToken(user, testSecret)
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	assert.Equal(t, float64(7), claims["id"])
	_, hasRole := claims["role"]
	assert.False(t, hasRole, "refresh token must not carry a role claim")

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(RefreshTokenTTL).Unix(), exp, 5)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleCustomer}

	tokenString, err := CreateAccessToken(user, testSecret)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("another_secret"), nil
	})
	assert.Error(t, err)
}

package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Abishek-KS6/HomeBuddy/models"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CreateAccessToken issues the signed session token carrying the user's
// identity and role claim.
func CreateAccessToken(user *models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// CreateRefreshToken issues the longer-lived token used to mint a fresh
// access token. It carries no role claim; the role is re-read on refresh.
func CreateRefreshToken(user *models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abishek-KS6/HomeBuddy/models"
	"github.com/Abishek-KS6/HomeBuddy/utils"
)

func protectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/whoami", Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"role":    c.Locals("role"),
		})
	})
	return app
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	user := &models.User{ID: 9, Email: "kim@example.com", Role: models.RoleCustomer}
	token, err := utils.CreateAccessToken(user, JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	claims := jwt.MapClaims{
		"id":   9,
		"role": "customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsWrongSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	user := &models.User{ID: 9, Email: "kim@example.com", Role: models.RoleCustomer}
	token, err := utils.CreateAccessToken(user, []byte("someone_elses_secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsUnknownRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	app := protectedApp(t)

	claims := jwt.MapClaims{
		"id":   9,
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExtractUserID(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"float64", jwt.MapClaims{"id": float64(12)}, 12, false},
		{"string", jwt.MapClaims{"id": "34"}, 34, false},
		{"missing", jwt.MapClaims{}, 0, true},
		{"garbage string", jwt.MapClaims{"id": "abc"}, 0, true},
		{"wrong type", jwt.MapClaims{"id": []string{"1"}}, 0, true},
	}
	for _, tc := range cases {
		got, err := extractUserID(tc.claims)
		if tc.wantErr {
			assert.Error(t, err, tc.name)
		} else {
			require.NoError(t, err, tc.name)
			assert.Equal(t, tc.want, got, tc.name)
		}
	}
}

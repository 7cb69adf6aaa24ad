package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-api/config"
	"restaurant-api/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	admin, _ := seedAdmin(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": "admin123",
	})
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		Admin struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.Email, resp.Admin.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupRouter(t)
	admin, _ := seedAdmin(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": "wrong-password",
	})
	assertStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "admin123",
	})
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestResetPassword(t *testing.T) {
	r := setupRouter(t)
	admin, _ := seedAdmin(t)

	// Unknown email
	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"email":       "nobody@example.com",
		"dob":         "2000-01-01",
		"newPassword": "newpass123",
	})
	assertStatus(t, w, http.StatusNotFound)

	// Wrong date of birth
	w = doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"email":       admin.Email,
		"dob":         "1999-12-31",
		"newPassword": "newpass123",
	})
	assertStatus(t, w, http.StatusUnauthorized)

	// Correct date of birth replaces the password
	w = doJSON(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"email":       admin.Email,
		"dob":         admin.DOB,
		"newPassword": "newpass123",
	})
	assertStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": "newpass123",
	})
	assertStatus(t, w, http.StatusOK)

	// Old password no longer works
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": "admin123",
	})
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)
	admin, token := seedAdmin(t)

	// No token
	w := doJSON(t, r, http.MethodGet, "/api/categories/all", "", nil)
	assertStatus(t, w, http.StatusUnauthorized)

	// Garbage token
	w = doJSON(t, r, http.MethodGet, "/api/categories/all", "not-a-token", nil)
	assertStatus(t, w, http.StatusUnauthorized)

	// Expired token
	expired := middleware.Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString(config.JWTSecret)
	require.NoError(t, err)
	w = doJSON(t, r, http.MethodGet, "/api/categories/all", expiredToken, nil)
	assertStatus(t, w, http.StatusUnauthorized)

	// Valid token passes the gate
	w = doJSON(t, r, http.MethodGet, "/api/categories/all", token, nil)
	assertStatus(t, w, http.StatusOK)
}

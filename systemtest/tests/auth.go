package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EternisAI/signup-portal/internal/api/http/dto"
	"github.com/EternisAI/signup-portal/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T, router *gin.Engine) {
	t.Run("success", func(t *testing.T) {
		body := dto.RegisterRequest{Username: "testuser", Email: "testuser@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/register", body)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp dto.RegisterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "testuser", resp.Username)
		assert.Equal(t, "testuser@example.com", resp.Email)
		assert.Equal(t, "user", resp.Role)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		body := dto.RegisterRequest{Username: "dupuser", Email: "dup1@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/register", body)
		require.Equal(t, http.StatusCreated, rr.Code)

		body.Email = "dup2@example.com"
		rr = doJSON(router, "POST", "/register", body)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := dto.RegisterRequest{Username: "mail1", Email: "shared@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/register", body)
		require.Equal(t, http.StatusCreated, rr.Code)

		body.Username = "mail2"
		rr = doJSON(router, "POST", "/register", body)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email is already taken")
	})

	t.Run("missing username", func(t *testing.T) {
		body := dto.RegisterRequest{Email: "nobody@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/register", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T, router *gin.Engine, jwtSecret string) {
	regBody := dto.RegisterRequest{Username: "loginuser", Email: "login@example.com", Password: "password123"}
	rr := doJSON(router, "POST", "/register", regBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("success", func(t *testing.T) {
		body := dto.LoginRequest{Username: "loginuser", Password: "password123"}
		rr := doJSON(router, "POST", "/login", body)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		claims, err := auth.ValidateToken(jwtSecret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "loginuser", claims.Username)
		assert.Equal(t, "user", claims.Role)

		req := httptest.NewRequest("GET", "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		profile := httptest.NewRecorder()
		router.ServeHTTP(profile, req)
		assert.Equal(t, http.StatusOK, profile.Code)
		assert.Contains(t, profile.Body.String(), "login@example.com")
	})

	t.Run("wrong password", func(t *testing.T) {
		body := dto.LoginRequest{Username: "loginuser", Password: "wrongpassword"}
		rr := doJSON(router, "POST", "/login", body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("nonexistent user", func(t *testing.T) {
		body := dto.LoginRequest{Username: "nouser", Password: "password123"}
		rr := doJSON(router, "POST", "/login", body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/EternisAI/signup-portal/internal/api/http/dto"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPortalRelay drives the portal against a live backend.
func TestPortalRelay(t *testing.T, portal *gin.Engine) {
	submit := func(body dto.SubmitRequest) (int, dto.SubmitResponse) {
		rr := doJSON(portal, "POST", "/register", body)
		var resp dto.SubmitResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return rr.Code, resp
	}

	t.Run("new user", func(t *testing.T) {
		code, resp := submit(dto.SubmitRequest{Username: "relayuser", Email: "relay@example.com", Password: "password123"})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, registration.StatusSuccess.Text, resp.Message)
		assert.Equal(t, registration.StatusSuccess.Color, resp.Color)
	})

	t.Run("same user again", func(t *testing.T) {
		code, resp := submit(dto.SubmitRequest{Username: "relayuser", Email: "relay@example.com", Password: "password123"})
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, registration.StatusFailure.Text, resp.Message)
		assert.Equal(t, registration.StatusFailure.Color, resp.Color)
	})

	t.Run("empty fields rejected upstream", func(t *testing.T) {
		code, resp := submit(dto.SubmitRequest{})
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, registration.StatusFailure.Text, resp.Message)
	})
}

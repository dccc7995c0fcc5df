package handler

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/EternisAI/signup-portal/internal/api/http/dto"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/gin-gonic/gin"
)

var (
	//go:embed static/index.html
	pageHTML []byte

	//go:embed static/index.js
	pageScript []byte
)

type RegistrationHandler struct {
	submitter registration.Submitter
}

func NewRegistrationHandler(submitter registration.Submitter) *RegistrationHandler {
	return &RegistrationHandler{submitter: submitter}
}

// Page serves the registration form
// GET /
func (h *RegistrationHandler) Page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", pageHTML)
}

// Script serves the form's submit handler
// GET /index.js
func (h *RegistrationHandler) Script(c *gin.Context) {
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", pageScript)
}

// Submit relays one form submission to the registration endpoint and
// answers with the status the page should show. Upstream failures are
// logged, never returned to the browser.
// POST /register
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The browser leaving must not abort a request already on its way.
	ctx := context.WithoutCancel(c.Request.Context())

	err := h.submitter.Submit(ctx, registration.Payload{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	status := registration.StatusFor(err)
	code := http.StatusOK
	if err != nil {
		slog.Error("Registration relay failed", "error", err, "client_ip", c.ClientIP())
		code = http.StatusBadGateway
	}

	c.JSON(code, dto.SubmitResponse{Message: status.Text, Color: status.Color})
}

package handler

import (
	"net/http"

	"github.com/EternisAI/signup-portal/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: h.service})
}

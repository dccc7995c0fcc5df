package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/EternisAI/signup-portal/internal/api/http/dto"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *users.Service
}

func NewUserHandler(userService *users.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the authenticated user
// GET /profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_id not found in context"})
		return
	}

	info, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("Failed to load profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:        info.ID,
		Username:  info.Username,
		Email:     info.Email,
		Role:      info.Role,
		CreatedAt: info.CreatedAt.Format(time.RFC3339),
	})
}

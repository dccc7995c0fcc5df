package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultAllowOrigins = []string{"http://localhost:3000"}

// NewCors builds the CORS middleware for the backend. The registration page
// is served from another origin, so only configured origins get through.
func NewCors(cfg CorsConfig) gin.HandlerFunc {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = defaultAllowOrigins
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}

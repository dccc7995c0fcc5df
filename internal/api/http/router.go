package http

import (
	"github.com/EternisAI/signup-portal/internal/api/http/handler"
	"github.com/EternisAI/signup-portal/internal/api/http/middleware"
	"github.com/EternisAI/signup-portal/internal/auth"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/gin-gonic/gin"
)

// PortalServices back the page-serving relay.
type PortalServices struct {
	Submitter registration.Submitter
}

// BackendServices back the registration backend.
type BackendServices struct {
	Auth  *auth.Service
	Users *users.Service
}

func setupCommon(engine *gin.Engine, service string) {
	engine.Use(middleware.RequestLogger())

	healthHandler := handler.NewHealthHandler(service)
	engine.GET("/health", healthHandler.Check)
}

func SetupPortalRoute(engine *gin.Engine, srvs *PortalServices) {
	setupCommon(engine, "signup-portal")

	registrationHandler := handler.NewRegistrationHandler(srvs.Submitter)
	engine.GET("/", registrationHandler.Page)
	engine.GET("/index.js", registrationHandler.Script)
	engine.POST("/register", registrationHandler.Submit)
}

func SetupBackendRoute(engine *gin.Engine, srvs *BackendServices) {
	setupCommon(engine, "signup-backend")

	authHandler := handler.NewAuthHandler(srvs.Auth)
	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)

	if srvs.Users != nil {
		userHandler := handler.NewUserHandler(srvs.Users)
		protected := engine.Group("/", middleware.JWTAuth(srvs.Auth.Config().Secret))
		protected.GET("/profile", userHandler.GetProfile)
	}
}

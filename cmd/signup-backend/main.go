package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalhttp "github.com/EternisAI/signup-portal/internal/api/http"
	"github.com/EternisAI/signup-portal/internal/auth"
	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/gin-gonic/gin"
)

var AppVersion string

func main() {
	InitConfig()

	slog.Info("Signup Backend", "version", AppVersion)

	if config.JWT.Secret == "" {
		slog.Error("jwt.secret is required")
		os.Exit(1)
	}

	if err := db.Migrate(config.DB); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := db.Connect(ctx, config.DB)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queries := db.New(pool)
	services := &internalhttp.BackendServices{
		Auth:  auth.NewService(queries, config.JWT),
		Users: users.NewService(queries),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(internalhttp.NewCors(config.Http.Cors))
	engine.Use(gin.Recovery())
	internalhttp.SetupBackendRoute(engine, services)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Http.Port),
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		slog.Error("Server error", "error", err)
	case sig := <-sigChan:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
	slog.Info("Shutdown complete")
}

package systemtest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	internalhttp "github.com/EternisAI/signup-portal/internal/api/http"
	"github.com/EternisAI/signup-portal/internal/auth"
	"github.com/EternisAI/signup-portal/internal/db"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/EternisAI/signup-portal/internal/users"
	"github.com/EternisAI/signup-portal/systemtest/postgres"
	"github.com/EternisAI/signup-portal/systemtest/tests"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

const jwtSecret = "systemtest-secret"

func TestSystemIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping system tests in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, url, err := postgres.StartPostgres(ctx)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = postgres.TerminatePostgres(context.Background(), container)
	})

	dbConfig := db.Config{Url: url, Schema: "signup"}
	require.NoError(t, db.Migrate(dbConfig))

	pool, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	gin.SetMode(gin.TestMode)
	queries := db.New(pool)
	backend := gin.New()
	internalhttp.SetupBackendRoute(backend, &internalhttp.BackendServices{
		Auth:  auth.NewService(queries, auth.Config{Secret: jwtSecret, Expiry: time.Hour}),
		Users: users.NewService(queries),
	})

	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	portal := gin.New()
	internalhttp.SetupPortalRoute(portal, &internalhttp.PortalServices{
		Submitter: registration.NewClient(backendSrv.URL+"/register", backendSrv.Client()),
	})

	t.Run("Register", func(t *testing.T) { tests.TestRegister(t, backend) })
	t.Run("Login", func(t *testing.T) { tests.TestLogin(t, backend, jwtSecret) })
	t.Run("PortalRelay", func(t *testing.T) { tests.TestPortalRelay(t, portal) })
	t.Run("Migrations idempotent", func(t *testing.T) { require.NoError(t, db.Migrate(dbConfig)) })
}

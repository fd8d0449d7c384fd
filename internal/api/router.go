package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora/identity-service/internal/api/handler"
	"github.com/velora/identity-service/internal/api/middleware"
	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

// Deps bundles the wired dependencies the router needs. Assembly happens in
// cmd/server so that background resources (audit dispatcher, connections)
// share one lifecycle.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	AuthService ports.AuthService
	Accounts    ports.AccountRepository
	Profiles    ports.ProfileCache
	Tokens      ports.TokenIssuer
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Credential lifecycle (public) ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes behind the access gate ---
	gate := middleware.Auth(d.Tokens)
	accountHandler := handler.NewAccountHandler(d.Accounts, d.Profiles, d.Logger)
	e.GET("/users/me", accountHandler.Me, gate)

	admin := e.Group("/admin", gate, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/accounts", accountHandler.List)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	return e
}

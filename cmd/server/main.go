package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/velora/identity-service/internal/api"
	"github.com/velora/identity-service/internal/core/service"
	"github.com/velora/identity-service/internal/infrastructure/config"
	mongodb "github.com/velora/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/velora/identity-service/internal/infrastructure/db/redis"
	"github.com/velora/identity-service/internal/infrastructure/queue"
	"github.com/velora/identity-service/internal/infrastructure/security"
	"github.com/velora/identity-service/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Missing signing secret is a startup failure, never a per-request error.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	accounts := mongodb.NewAccountRepository(db)
	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit pipeline ---
	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- Credential lifecycle ---
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accounts, hasher, tokens, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		AuthService: authService,
		Accounts:    accounts,
		Profiles:    redisdb.NewProfileCache(rdb),
		Tokens:      tokens,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

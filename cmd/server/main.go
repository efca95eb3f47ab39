package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/medroster/roster-system/internal/api"
	"github.com/medroster/roster-system/internal/core/service"
	mongodb "github.com/medroster/roster-system/internal/infrastructure/db/mongo"
	redisdb "github.com/medroster/roster-system/internal/infrastructure/db/redis"
	"github.com/medroster/roster-system/internal/infrastructure/queue"
	"github.com/medroster/roster-system/internal/pkg/config"
	"github.com/medroster/roster-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Open(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// The unique email index is what makes concurrent duplicate
	// registration safe; create it before accepting traffic.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Open(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit pipeline ---
	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Msg("roster auth service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

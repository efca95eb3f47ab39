package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/medroster/roster-system/docs"
	"github.com/medroster/roster-system/internal/api/handler"
	"github.com/medroster/roster-system/internal/api/middleware"
	"github.com/medroster/roster-system/internal/core/domain"
	"github.com/medroster/roster-system/internal/core/ports"
	"github.com/medroster/roster-system/internal/core/service"
	mongodb "github.com/medroster/roster-system/internal/infrastructure/db/mongo"
	"github.com/medroster/roster-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("roster"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authHandler := handler.NewAuthHandler(authService, audit)
	authMiddleware := middleware.Auth(authService, audit)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Env)
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())

	docs := e.Group("/docs", middleware.DocsBasicAuth(cfg.Docs.Username, cfg.Docs.Password))
	docs.GET("/*", echoSwagger.WrapHandler)

	return e
}

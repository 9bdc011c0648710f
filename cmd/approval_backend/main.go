package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/theCrudify/kpin-approval/internal/adapters/financeapi"
	"github.com/theCrudify/kpin-approval/internal/core/services"
	"github.com/theCrudify/kpin-approval/internal/handlers"
	"github.com/theCrudify/kpin-approval/internal/middleware"
	"github.com/theCrudify/kpin-approval/internal/platform/config"
)

// @title KPIN Approval Backend API
// @version 1.0
// @description Approval workflow engine for KPIN finance documents.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Finance backend client; the backend stays the single source of truth
	// for committed document state.
	client := financeapi.NewClient(cfg.FinanceAPIBaseURL, cfg.FinanceAPITimeout)
	logger.Info("Finance backend client configured",
		slog.String("base_url", cfg.FinanceAPIBaseURL),
		slog.Duration("timeout", cfg.FinanceAPITimeout))

	serviceContainer := services.NewContainer(client, cfg.AdminRole)

	rate, err := limiter.NewRateFromFormatted(cfg.TransitionRateLimit)
	if err != nil {
		logger.Error("Invalid TRANSITION_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	transitionLimiter := limiter.New(memory.NewStore(), rate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, transitionLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/turma62/fundraiser/internal/core/services"
	"github.com/turma62/fundraiser/internal/handlers"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/turma62/fundraiser/internal/platform/config"
	"github.com/turma62/fundraiser/internal/realtime"
	"github.com/turma62/fundraiser/internal/repositories/database/pgsql"
	"github.com/turma62/fundraiser/internal/storage"
	"github.com/turma62/fundraiser/internal/utils"
	"github.com/turma62/fundraiser/pkg/database"
)

// @title Turma 62 Fundraiser API
// @version 1.0
// @description Donation ledger and admin panel for the Turma 62 fundraising campaign.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	assets, err := storage.NewFileStore(storage.Options{
		BasePath:      cfg.AssetStorageDir,
		Bucket:        cfg.AssetBucket,
		PublicBaseURL: cfg.PublicBaseURL,
		SigningSecret: cfg.AssetSigningSecret,
		Issuer:        cfg.JWTIssuer,
	})
	if err != nil {
		logger.Error("Failed to initialize asset store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool, assets)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	seeded, err := serviceContainer.Ledger.SeedOpeningBalance(ctx, cfg.OpeningBalance)
	if err != nil {
		logger.Error("Failed to seed opening balance", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if seeded {
		logger.Info("Opening balance seeded", slog.String("amount", cfg.OpeningBalance.String()))
	}

	// Ledger changes fan out to every open stream
	hub := realtime.NewHub(logger)
	listener := pgsql.NewChangeListener(dbPool, hub, logger)
	go listener.Run(ctx)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, hub, assets, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// open streams are cancelled through the base context on shutdown
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/turma62/fundraiser/cmd/docs"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/middleware"
	"github.com/turma62/fundraiser/internal/platform/config"
	"github.com/turma62/fundraiser/internal/realtime"
	"github.com/turma62/fundraiser/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub realtime.Subscriber,
	assets portsrepo.AssetStore,
	analytics *utils.PosthogClientWrapper,
) error {
	donationLimiter, err := middleware.NewMemoryLimiter(cfg.DonationRateLimit)
	if err != nil {
		return fmt.Errorf("donation rate limit: %w", err)
	}
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}

	r.GET("/health", getHealth)

	// signed proof links live outside /api so they can be opened directly
	RegisterProofRoutes(r, assets, cfg.AssetBucket)

	v1 := r.Group("/api/v1")

	RegisterLedgerRoutes(v1, cfg, services.Ledger, hub, donationLimiter, analytics)

	RegisterAuthRoutes(v1, AuthRouteDeps{
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.IsProduction,
		Auth:          services.Auth,
		GoogleOAuth:   services.GoogleOAuth,
		AdminGate:     services.AdminGate,
		LoginLimiter:  loginLimiter,
	})

	// Admin routes need a session; the gate itself is applied per route group
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterAdminRoutes(authed, services.Ledger, services.AdminGate, hub, analytics)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

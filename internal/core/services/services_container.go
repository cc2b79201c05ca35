package services

import (
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.AssetStore,
		WithGoal(cfg.CampaignGoal),
		WithProofPolicy(cfg.ProofRequired, cfg.MaxProofBytes),
		WithHistoryLimit(cfg.HistoryLimit),
		WithSignedURLTTL(cfg.SignedURLTTL),
	)

	container.AdminGate = NewAdminGateService(repos.AdminRepo, cfg.AdminGateCacheTTL)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	if cfg.GoogleEnabled() {
		container.GoogleOAuth = NewGoogleOAuthService(cfg, repos.UserRepo)
	}

	return container
}

package services

import (
	"context"

	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	"github.com/turma62/fundraiser/internal/platform/config"
	"google.golang.org/api/idtoken"
)

// GoogleUserFromIDToken runs the ID token half of the Google flow with a stub validator.
func GoogleUserFromIDToken(ctx context.Context, cfg *config.Config, userRepo portsrepo.UserReader,
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error), rawIDToken string,
) (*domain.User, error) {
	svc := NewGoogleOAuthService(cfg, userRepo).(*googleOAuthService)
	svc.validate = validate
	return svc.userFromIDToken(ctx, rawIDToken)
}

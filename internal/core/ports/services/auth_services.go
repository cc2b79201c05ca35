package services

import (
	"context"
	"time"

	"github.com/turma62/fundraiser/internal/core/domain"
)

// AdminGateSvc is the single source of truth for "is this principal an active administrator".
type AdminGateSvc interface {
	// CheckAdmin never returns an error for a plain "not an admin"; that is Authorized=false.
	CheckAdmin(ctx context.Context, userID string) (domain.AdminAccess, error)
	// Forget drops any cached decision for userID (e.g. on sign-out).
	Forget(userID string)
}

// AuthSvc handles the session principal.
type AuthSvc interface {
	// Login checks email/password and issues a session token.
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	// IssueToken creates a session token for an already authenticated user.
	IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// GetPrincipal returns the user behind a session.
	GetPrincipal(ctx context.Context, userID string) (*domain.User, error)
}

// GoogleOAuthSvc defines the Google sign-in flow for administrators.
type GoogleOAuthSvc interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ResolveUser exchanges the authorization code, verifies the ID token and
	// returns the registered user with the verified email.
	ResolveUser(ctx context.Context, code string) (*domain.User, error)
}

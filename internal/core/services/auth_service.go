package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	portssvc "github.com/turma62/fundraiser/internal/core/ports/services"
	"github.com/turma62/fundraiser/internal/platform/config"
	"github.com/turma62/fundraiser/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// authService issues session tokens for admin panel users.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvc {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown email")
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", time.Time{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	return s.IssueToken(ctx, user)
}

// IssueToken creates a new JWT session token for the given user.
func (s *authService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

func (s *authService) GetPrincipal(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}
	return user, nil
}

// idTokenValidator matches idtoken.Validate; swapped out in tests.
type idTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// googleOAuthService implements GoogleOAuthSvc.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	userRepo     portsrepo.UserReader
	validate     idTokenValidator
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.GoogleOAuthSvc {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo: userRepo,
		validate: idtoken.Validate,
	}
}

var _ portssvc.GoogleOAuthSvc = (*googleOAuthService)(nil)

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.RandomURLToken(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) ResolveUser(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code")
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("google response has no id_token: %w", apperrors.ErrUnauthorized)
	}
	return s.userFromIDToken(ctx, rawIDToken)
}

func (s *googleOAuthService) userFromIDToken(ctx context.Context, rawIDToken string) (*domain.User, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := s.validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google ID token validation failed: %w", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, fmt.Errorf("google account email missing or unverified: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// only pre-registered principals may sign in
			return nil, fmt.Errorf("no registered user for google account: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}
	return user, nil
}

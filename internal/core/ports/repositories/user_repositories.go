package repositories

import (
	"context"

	"github.com/turma62/fundraiser/internal/core/domain"
)

// UserReader defines read operations for session principals
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AdminReader resolves the administrator flag of a principal.
type AdminReader interface {
	// FindActiveAdmin returns the admin row for userID only if it is active.
	// It returns apperrors.ErrNotFound when there is no matching active row.
	FindActiveAdmin(ctx context.Context, userID string) (*domain.AdminUser, error)
}

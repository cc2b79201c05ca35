package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turma62/fundraiser/internal/apperrors"
	"github.com/turma62/fundraiser/internal/core/domain"
	portsrepo "github.com/turma62/fundraiser/internal/core/ports/repositories"
	"github.com/turma62/fundraiser/internal/models"
	"github.com/turma62/fundraiser/internal/utils/mapping"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserReader {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserReader
var _ portsrepo.UserReader = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1;`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, name, password_hash, created_at FROM users WHERE lower(email) = lower($1);`, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var m models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}

type PgxAdminRepository struct {
	db *pgxpool.Pool
}

func newPgxAdminRepository(db *pgxpool.Pool) portsrepo.AdminReader {
	return &PgxAdminRepository{db: db}
}

var _ portsrepo.AdminReader = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) FindActiveAdmin(ctx context.Context, userID string) (*domain.AdminUser, error) {
	query := `
		SELECT user_id, name, is_active, created_at
		FROM admin_users
		WHERE user_id = $1 AND is_active = TRUE;
	`
	var m models.AdminUser
	err := r.db.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.Name, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin %s: %w", userID, err)
	}
	d := mapping.ToDomainAdminUser(m)
	return &d, nil
}

package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID       string         `db:"id"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	PasswordHash sql.NullString `db:"password_hash"` // Null for Google-only accounts
	CreatedAt    time.Time      `db:"created_at"`
}

// AdminUser is the row shape of the admin_users table.
type AdminUser struct {
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

package domain

import "time"

// User is a session principal able to sign in to the admin panel.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}

// AdminUser links a principal to the administrator flag and display name.
type AdminUser struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminAccess is the outcome of the admin gate for one principal.
type AdminAccess struct {
	UserID     string `json:"userID"`
	Authorized bool   `json:"authorized"`
	Name       string `json:"name,omitempty"`
}

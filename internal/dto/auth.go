package dto

import "time"

// LoginRequest represents admin panel credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse describes the current principal.
type SessionResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// AdminMeResponse is the admin gate outcome for the caller.
type AdminMeResponse struct {
	Authorized bool   `json:"authorized"`
	Name       string `json:"name,omitempty"`
}

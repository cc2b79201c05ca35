package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

// ErrEmptyPassword is returned when hashing an empty admin password.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes an admin password with bcrypt. Passwords over 72 bytes are rejected by bcrypt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash. Users without a
// password (Google-only admins) never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

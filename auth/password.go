// Package auth provides password hashing and the signed session-token
// contract: a 24h HS256 token carried in an HTTP-only cookie.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a raw password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Package jwt defines the admin session token claims.
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload embedded in the admin session token.
// Subject carries the admin document id in hex.
type AdminClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminID returns the admin document id carried in the token subject.
func (ac *AdminClaims) AdminID() string {
	return ac.Subject
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims holds the decoded content of a bearer token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the
// opaque bearer tokens that carry a user identity.
type TokenService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry of a token string
	// and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the validity window of issued tokens.
	TokenDuration() time.Duration
}

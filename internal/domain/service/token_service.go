package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures form a closed set so callers can branch on the
// cause without inspecting library-specific errors.
var (
	// ErrTokenInvalid covers bad signatures, malformed tokens and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMissingClaim is returned when the email claim is absent.
	ErrTokenMissingClaim = errors.New("token is missing the email claim")
)

// Claims is the set of identity facts embedded in a token.
type Claims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying stateless,
// signed identity tokens. Verification is by recomputation alone; no
// server-side lookup is involved, which trades instant revocation for
// horizontal scalability. Implementations must be safe for concurrent use.
type TokenService interface {
	// Issue creates a signed token carrying the user's email and ID with
	// a fixed-duration expiry from the moment of issuance.
	Issue(email string, userID uuid.UUID) (string, error)

	// Verify decodes the token, checks the signature and expiry, and
	// returns the embedded claims. Failures are one of ErrTokenInvalid,
	// ErrTokenExpired or ErrTokenMissingClaim.
	Verify(tokenString string) (*Claims, error)
}

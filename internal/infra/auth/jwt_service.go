package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// DefaultAccessTokenTTL bounds the blast radius of a leaked token.
const DefaultAccessTokenTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The signing secret is injected at construction
// and immutable afterwards; there is no runtime rotation.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. It takes configuration
// values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.AccessTTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token embedding the user's email and ID alongside
// a fixed-duration expiry.
func (s *jwtService) Issue(email string, userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify decodes and validates the token, mapping library errors onto the
// domain's closed error set.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any token not signed with the expected HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	if claims.Email == "" {
		return nil, service.ErrTokenMissingClaim
	}

	return claims, nil
}

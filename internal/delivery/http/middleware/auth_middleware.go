// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// currentUserKey is the echo context key the resolved user is stored under.
const currentUserKey = "currentUser"

// AuthMiddleware authenticates requests by resolving their bearer token
// into a user record. Everything behind it can assume an authenticated
// caller.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate extracts the bearer token, resolves it and stores the user
// on the request context. Any failure yields the same 401 response; the
// cause is never echoed back.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		user, err := m.identity.Resolve(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Could not validate credentials")
		}

		c.Set(currentUserKey, user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user stored on the context, or nil
// when the route was not behind Authenticate.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(currentUserKey).(*entity.User)

	return user
}

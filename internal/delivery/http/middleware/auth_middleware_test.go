package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityStub struct {
	user *entity.User
	err  error
	got  string
}

func (s *identityStub) Resolve(_ context.Context, token string) (*entity.User, error) {
	s.got = token
	if s.err != nil {
		return nil, s.err
	}

	return s.user, nil
}

func runAuth(t *testing.T, identity *identityStub, authHeader string) (*httptest.ResponseRecorder, *entity.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	handler := NewAuthMiddleware(identity).Authenticate(func(c echo.Context) error {
		seen = CurrentUser(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@b.com"}
	identity := &identityStub{user: user}

	rec, seen := runAuth(t, identity, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", identity.got)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, seen := runAuth(t, &identityStub{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, seen := runAuth(t, &identityStub{}, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_ResolveFails(t *testing.T) {
	identity := &identityStub{err: domainerrors.ErrUnauthenticated}

	rec, seen := runAuth(t, identity, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	assert.Nil(t, seen)
}

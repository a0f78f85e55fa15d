package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskhub/internal/delivery/http/validator"
	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userUsecaseStub implements usecase.UserUsecase with function fields so each
// test can script just the call it cares about.
type userUsecaseStub struct {
	loginFn func(input *usecase.LoginInput) (*usecase.AuthOutput, error)
	listFn  func(offset, limit int) ([]*entity.User, error)
	getFn   func(id uuid.UUID) (*entity.User, error)

	gotRegister *usecase.RegisterInput
	gotOffset   int
	gotLimit    int
}

var _ usecase.UserUsecase = (*userUsecaseStub)(nil)

func (s *userUsecaseStub) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	s.gotRegister = input

	return &usecase.AuthOutput{AccessToken: "token"}, nil
}

func (s *userUsecaseStub) Login(_ context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if s.loginFn != nil {
		return s.loginFn(input)
	}

	return &usecase.AuthOutput{AccessToken: "token"}, nil
}

func (s *userUsecaseStub) ListUsers(_ context.Context, offset, limit int) ([]*entity.User, error) {
	s.gotOffset = offset
	s.gotLimit = limit
	if s.listFn != nil {
		return s.listFn(offset, limit)
	}

	return nil, nil
}

func (s *userUsecaseStub) GetUser(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.getFn != nil {
		return s.getFn(id)
	}

	return nil, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"secret"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	require.NotNil(t, uc.gotRegister)
	assert.Equal(t, "a@b.com", uc.gotRegister.Email)
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"a@b.com"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	// The response names the failing field rather than a canned message.
	assert.Contains(t, rec.Body.String(), "Password")
	assert.Nil(t, uc.gotRegister)
}

func TestUserHandler_Login(t *testing.T) {
	uc := &userUsecaseStub{
		loginFn: func(input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{AccessToken: "issued"}, nil
		},
	}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued")
}

func TestUserHandler_ListUsers_Pagination(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodGet, "/users?skip=5&limit=2", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, uc.gotOffset)
	assert.Equal(t, 2, uc.gotLimit)
}

func TestUserHandler_ListUsers_Defaults(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, slog.Default())

	c, _ := newTestContext(http.MethodGet, "/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, 0, uc.gotOffset)
	assert.Equal(t, 100, uc.gotLimit)
}

func TestUserHandler_GetUser_HidesPasswordHash(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "a@b.com",
		PasswordHash: "$2a$10$topsecret",
		CreatedAt:    time.Now(),
	}
	uc := &userUsecaseStub{
		getFn: func(id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodGet, "/users/"+user.ID.String(), "")
	c.SetParamNames("userID")
	c.SetParamValues(user.ID.String())

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
	assert.NotContains(t, rec.Body.String(), "topsecret")
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	uc := &userUsecaseStub{}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(http.MethodGet, "/users/not-a-uuid", "")
	c.SetParamNames("userID")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultListLimit caps user listings when the caller supplies no limit.
const defaultListLimit = 100

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete registration process: uniqueness check
// and insert run inside one transaction; the token is issued afterwards.
// The unique index on email remains the real enforcement point when two
// registrations race, and surfaces as the same Conflict error.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.tokenService.Issue(newUser.Email, newUser.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken}, nil
}

// Login verifies the credentials and issues a fresh access token. A missing
// account and a wrong password both yield ErrInvalidCredentials so the
// response shape never reveals whether the email is registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.logger.Error("Stored hash is unusable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.Email, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{AccessToken: accessToken}, nil
}

// ListUsers returns registered users in insertion order.
func (srv *userService) ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a single user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

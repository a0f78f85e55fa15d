package impl

import (
	"context"
	"log/slog"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	tokenService service.TokenService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		tokenService: tokenService,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Resolve verifies the token and loads the user its email claim refers to.
// Verification failures and a vanished user are indistinguishable to the
// caller: both collapse into ErrUnauthenticated. The only side effect is
// the store read.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.logger.Debug("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Debug("Token refers to unknown user", slog.String("email", claims.Email))

			return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load user during identity resolution")
	}

	return user, nil
}

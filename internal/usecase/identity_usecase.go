package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
)

// IdentityUsecase turns an inbound token into an authenticated user record.
// Every protected operation passes through Resolve before touching user or
// task state.
type IdentityUsecase interface {
	// Resolve verifies the token and loads the user its email claim
	// refers to. Every failure mode (bad signature, expiry, missing
	// claim, or a user that no longer exists) collapses into the single
	// Unauthenticated application error so callers cannot probe which
	// part failed.
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

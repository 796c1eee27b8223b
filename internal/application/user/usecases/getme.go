package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/application/user/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type GetMeExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type GetMeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns the caller's profile. A token for a user that has since
// been deactivated no longer authenticates.
func (uc *GetMeUseCase) Execute(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	if userID == 0 {
		return nil, errors.NewUnauthenticatedError("not authenticated")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthenticatedError("user no longer exists")
		}
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthenticatedError("user is inactive")
	}

	return dto.ToUserResponse(u), nil
}

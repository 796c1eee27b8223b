package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/application/user/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, username, role string) (string, int64, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error)
}

type LoginCommand struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, verifier PasswordVerifier, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	username := user.NormalizeUsername(cmd.Username)
	uc.logger.Infow("executing login use case", "username", username)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login for unknown or inactive user", "username", username)
			return nil, errors.NewUnauthenticatedError("invalid username or password")
		}
		uc.logger.Errorw("failed to load user", "username", username, "error", err)
		return nil, err
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthenticatedError("invalid username or password")
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "role", u.Role())

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        dto.ToUserResponse(u),
	}, nil
}

package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/application/menu/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type ListMenuExecutor interface {
	Execute(ctx context.Context) ([]*dto.MenuItemResponse, error)
}

type ListMenuUseCase struct {
	menuRepo menu.Repository
	logger   logger.Interface
}

func NewListMenuUseCase(menuRepo menu.Repository, logger logger.Interface) *ListMenuUseCase {
	return &ListMenuUseCase{menuRepo: menuRepo, logger: logger}
}

func (uc *ListMenuUseCase) Execute(ctx context.Context) ([]*dto.MenuItemResponse, error) {
	items, err := uc.menuRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list menu", "error", err)
		return nil, err
	}
	return dto.ToMenuItemResponses(items), nil
}

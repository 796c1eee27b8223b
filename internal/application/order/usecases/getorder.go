package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/application/order/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type GetOrderQuery struct {
	PublicID string
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*events.OrderSnapshot, error) {
	view, err := uc.orderRepo.GetView(ctx, query.PublicID)
	if err != nil {
		uc.logger.Warnw("failed to get order", "public_id", query.PublicID, "error", err)
		return nil, err
	}
	return dto.ToOrderSnapshot(view), nil
}

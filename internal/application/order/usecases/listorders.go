package usecases

import (
	"context"
	"strings"

	"github.com/lorenzobigazzi0/cassa/internal/application/order/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// ListOrdersQuery selects orders newest first. Every matching order is
// returned; the floor screens rely on seeing all open tickets.
type ListOrdersQuery struct {
	// Status filters by order status when non-empty.
	Status string
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) ([]*events.OrderSnapshot, error) {
	var filter order.ListFilter

	if s := strings.TrimSpace(query.Status); s != "" {
		status, err := vo.NewOrderStatus(strings.ToUpper(s))
		if err != nil {
			return nil, errors.NewValidationError("invalid order status", s)
		}
		filter.Status = &status
	}

	views, err := uc.orderRepo.ListViews(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "status", query.Status, "error", err)
		return nil, err
	}

	return dto.ToOrderSnapshots(views), nil
}

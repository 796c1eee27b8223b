package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
)

type CreateOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error)
}

type MarkItemDoneExecutor interface {
	Execute(ctx context.Context, cmd MarkItemDoneCommand) (*MarkItemDoneResult, error)
}

type ListOrdersExecutor interface {
	Execute(ctx context.Context, query ListOrdersQuery) ([]*events.OrderSnapshot, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query GetOrderQuery) (*events.OrderSnapshot, error)
}

// orderCreatedStaff receives order_created; waiters get a separate push.
var orderCreatedStaff = []events.Channel{events.ChannelBar, events.ChannelCassa, events.ChannelAdmin}

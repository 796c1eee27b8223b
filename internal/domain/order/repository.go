package order

import (
	"context"

	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
)

// ListFilter narrows ListViews. The result is never truncated.
type ListFilter struct {
	Status *vo.OrderStatus
}

type Repository interface {
	// Create inserts the order and its items and assigns ids to both.
	Create(ctx context.Context, o *Order) error
	GetByPublicID(ctx context.Context, publicID string) (*Order, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
	SetItemDone(ctx context.Context, orderID, itemID uint, done bool) error
	// UpdateStatus persists status, ready_at and closed_at.
	UpdateStatus(ctx context.Context, o *Order) error
	GetView(ctx context.Context, publicID string) (*View, error)
	ListViews(ctx context.Context, filter ListFilter) ([]*View, error)
}

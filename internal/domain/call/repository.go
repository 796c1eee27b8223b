package call

import "context"

type Repository interface {
	Create(ctx context.Context, c *Call) error
	GetByID(ctx context.Context, id uint) (*Call, error)
	// UpdateAck persists is_ack and acked_at.
	UpdateAck(ctx context.Context, c *Call) error
}

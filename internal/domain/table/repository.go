package table

import "context"

type Repository interface {
	Create(ctx context.Context, t *Table) error
	GetByNumber(ctx context.Context, number int) (*Table, error)
	// FindByNumber returns nil without error when no table has that number.
	FindByNumber(ctx context.Context, number int) (*Table, error)
	// UpdateOpening persists is_open, opened_by, opened_at and closed_at.
	UpdateOpening(ctx context.Context, t *Table) error
	Count(ctx context.Context) (int64, error)
}

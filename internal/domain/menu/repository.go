package menu

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	// ListActive returns active items ordered by category, then name.
	ListActive(ctx context.Context) ([]*Item, error)
	// FindActiveByIDs returns the subset of ids that resolve to active items.
	FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]*Item, error)
	Count(ctx context.Context) (int64, error)
}

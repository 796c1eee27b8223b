package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetActiveByUsername returns NotFound for unknown or deactivated users.
	GetActiveByUsername(ctx context.Context, username string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

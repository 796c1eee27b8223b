package order

import (
	"context"
	"fmt"
)

// PublicIDAttempts bounds how many candidates are checked against storage.
const PublicIDAttempts = 3

type PublicIDGenerator interface {
	Generate() (string, error)
}

// ExistsFunc reports whether a public id is already taken.
type ExistsFunc func(ctx context.Context, publicID string) (bool, error)

// AssignPublicID draws a candidate and redraws while it collides, checking at
// most PublicIDAttempts times. The last draw is accepted unchecked; the
// unique index on orders.public_id catches the rare remaining collision.
func AssignPublicID(ctx context.Context, gen PublicIDGenerator, exists ExistsFunc) (string, error) {
	candidate, err := gen.Generate()
	if err != nil {
		return "", fmt.Errorf("failed to generate public id: %w", err)
	}

	for i := 0; i < PublicIDAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check public id: %w", err)
		}
		if !taken {
			break
		}
		if candidate, err = gen.Generate(); err != nil {
			return "", fmt.Errorf("failed to generate public id: %w", err)
		}
	}

	return candidate, nil
}

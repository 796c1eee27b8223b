package usecases

import (
	"context"
	"fmt"

	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
)

type mockUserRepository struct {
	user.Repository
	GetByIDFunc             func(ctx context.Context, id uint) (*user.User, error)
	GetActiveByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetActiveByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.GetActiveByUsernameFunc(ctx, username)
}

// plainVerifier accepts a password equal to "plain:" + hash.
type plainVerifier struct{}

func (plainVerifier) Verify(password, hash string) error {
	if "plain:"+password != hash {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type stubIssuer struct {
	token string
	err   error
	got   []any
}

func (s *stubIssuer) Generate(userID uint, username, role string) (string, int64, error) {
	s.got = []any{userID, username, role}
	return s.token, 43200, s.err
}

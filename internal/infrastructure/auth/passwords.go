package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
)

// bcrypt only reads the first 72 bytes; longer staff passwords are refused
// instead of being silently cut.
const maxPasswordBytes = 72

// ErrPasswordMismatch is the only failure Verify reports, whatever the cause.
var ErrPasswordMismatch = errors.New("password verification failed")

// StaffPasswords hashes the passwords written by the seed and checks them at
// login. The cost comes from the jwt section of the configuration.
type StaffPasswords struct {
	cost int
}

func NewStaffPasswords(cfg config.JWTConfig) *StaffPasswords {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &StaffPasswords{cost: cost}
}

func (p *StaffPasswords) Hash(password string) (string, error) {
	switch {
	case password == "":
		return "", fmt.Errorf("staff password is required")
	case len(password) > maxPasswordBytes:
		return "", fmt.Errorf("staff password exceeds %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash staff password: %w", err)
	}
	return string(hash), nil
}

// Verify fails fast for accounts stored without a hash.
func (p *StaffPasswords) Verify(password, hash string) error {
	if hash == "" || password == "" {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

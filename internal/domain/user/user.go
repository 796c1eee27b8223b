package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id           uint
	username     string
	displayName  string
	role         Role
	passwordHash string
	isActive     bool
	createdAt    time.Time
}

// NewUser normalizes the username to lower case; logins compare against it.
func NewUser(username, displayName string, role Role, passwordHash string, now time.Time) (*User, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = username
	}
	return &User{
		username:     username,
		displayName:  strings.TrimSpace(displayName),
		role:         role,
		passwordHash: passwordHash,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uint, username, displayName string, role Role, passwordHash string, isActive bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		displayName:  displayName,
		role:         role,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Role() Role           { return u.role }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) SetID(id uint)        { u.id = id }

package user

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleBar     Role = "BAR"
	RoleWaiter  Role = "WAITER"
	RoleCashier Role = "CASHIER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBar, RoleWaiter, RoleCashier:
		return true
	}
	return false
}

// PolicySubject is the lower-case name used in the permission policy.
func (r Role) PolicySubject() string {
	return strings.ToLower(string(r))
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

package permission

import (
	"fmt"

	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// Resources and actions guarded by the HTTP layer.
const (
	ResourceOrder      = "order"
	ResourceOrderItem  = "order_item"
	ResourceCallWaiter = "call_waiter"
	ResourceCallBarman = "call_barman"
	ResourceCall       = "call"
	ResourceMenu       = "menu"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionPrint  = "print"
	ActionAck    = "ack"
)

const (
	roleAdmin   = "admin"
	roleBar     = "bar"
	roleWaiter  = "waiter"
	roleCashier = "cashier"
)

var allRoles = []string{roleAdmin, roleBar, roleWaiter, roleCashier}

// FloorPolicies is the role matrix of the floor operations.
func FloorPolicies() [][]string {
	policies := [][]string{
		{roleWaiter, ResourceOrder, ActionCreate},
		{roleCashier, ResourceOrder, ActionCreate},
		{roleAdmin, ResourceOrder, ActionCreate},

		{roleBar, ResourceOrderItem, ActionUpdate},
		{roleAdmin, ResourceOrderItem, ActionUpdate},

		{roleBar, ResourceOrder, ActionPrint},
		{roleCashier, ResourceOrder, ActionPrint},
		{roleAdmin, ResourceOrder, ActionPrint},

		{roleBar, ResourceCallWaiter, ActionCreate},
		{roleCashier, ResourceCallWaiter, ActionCreate},
		{roleAdmin, ResourceCallWaiter, ActionCreate},

		{roleWaiter, ResourceCallBarman, ActionCreate},
		{roleCashier, ResourceCallBarman, ActionCreate},
		{roleAdmin, ResourceCallBarman, ActionCreate},
	}

	for _, role := range allRoles {
		policies = append(policies,
			[]string{role, ResourceCall, ActionAck},
			[]string{role, ResourceOrder, ActionRead},
			[]string{role, ResourceMenu, ActionRead},
		)
	}
	return policies
}

// InitFloorPermissions installs the role matrix, keeping existing rows.
func InitFloorPermissions(e *Enforcer, log logger.Interface) error {
	for _, policy := range FloorPolicies() {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add floor permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("floor permissions initialized successfully", "policies", len(FloorPolicies()))
	return nil
}

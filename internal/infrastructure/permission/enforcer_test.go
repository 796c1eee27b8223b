package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

func newFloorEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	log := logger.NewNopLogger()
	e, err := NewEnforcer(nil, log)
	require.NoError(t, err)
	require.NoError(t, InitFloorPermissions(e, log))
	return e
}

func TestFloorPolicies_RoleMatrix(t *testing.T) {
	e := newFloorEnforcer(t)

	tests := []struct {
		resource string
		action   string
		allowed  []string
	}{
		{ResourceOrder, ActionCreate, []string{"waiter", "cashier", "admin"}},
		{ResourceOrderItem, ActionUpdate, []string{"bar", "admin"}},
		{ResourceOrder, ActionPrint, []string{"bar", "cashier", "admin"}},
		{ResourceCallWaiter, ActionCreate, []string{"bar", "cashier", "admin"}},
		{ResourceCallBarman, ActionCreate, []string{"waiter", "cashier", "admin"}},
		{ResourceCall, ActionAck, allRoles},
		{ResourceOrder, ActionRead, allRoles},
		{ResourceMenu, ActionRead, allRoles},
	}

	for _, tt := range tests {
		t.Run(tt.resource+":"+tt.action, func(t *testing.T) {
			for _, role := range allRoles {
				ok, err := e.Enforce(role, tt.resource, tt.action)
				require.NoError(t, err)
				assert.Equal(t, contains(tt.allowed, role), ok, role)
			}
		})
	}
}

func TestInitFloorPermissions_Idempotent(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log := logger.NewNopLogger()
	e, err := NewEnforcer(gdb, log)
	require.NoError(t, err)

	require.NoError(t, InitFloorPermissions(e, log))
	require.NoError(t, InitFloorPermissions(e, log))

	reloaded, err := NewEnforcer(gdb, log)
	require.NoError(t, err)
	ok, err := reloaded.Enforce("bar", ResourceOrderItem, ActionUpdate)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reloaded.Enforce("waiter", ResourceOrderItem, ActionUpdate)
	require.NoError(t, err)
	assert.False(t, ok)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

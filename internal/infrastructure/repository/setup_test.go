package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/persistence/models"
)

// setupTestDB opens a private in-memory database. A single connection keeps
// every query, transactions included, on the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

type fixtures struct {
	waiter *user.User
	table  *table.Table
	spritz *menu.Item
	water  *menu.Item
}

func seedFixtures(t *testing.T, gdb *gorm.DB) fixtures {
	t.Helper()
	ctx := context.Background()

	u, err := user.NewUser("emma", "Emma", user.RoleWaiter, "$2a$10$hash", time.Now())
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(gdb).Create(ctx, u))

	tb, err := table.NewTable(12)
	require.NoError(t, err)
	require.NoError(t, NewTableRepository(gdb).Create(ctx, tb))

	menuRepo := NewMenuRepository(gdb)
	spritz, err := menu.NewItem("SPRITZ", "Spritz", "Aperitivi", decimal.RequireFromString("6.50"))
	require.NoError(t, err)
	require.NoError(t, menuRepo.Create(ctx, spritz))

	water, err := menu.NewItem("", "Acqua", "Bibite", decimal.RequireFromString("2"))
	require.NoError(t, err)
	require.NoError(t, menuRepo.Create(ctx, water))

	return fixtures{waiter: u, table: tb, spritz: spritz, water: water}
}

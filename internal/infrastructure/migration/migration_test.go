package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

func TestNewStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{name: "sqlite always automigrates", cfg: config.DatabaseConfig{Driver: config.DriverSQLite, MigrationStrategy: "goose"}, want: "gorm_auto_migrate"},
		{name: "default is auto", cfg: config.DatabaseConfig{Driver: config.DriverMySQL}, want: "gorm_auto_migrate"},
		{name: "goose on mysql", cfg: config.DatabaseConfig{Driver: config.DriverMySQL, MigrationStrategy: "goose"}, want: "goose"},
		{name: "goose on postgres", cfg: config.DatabaseConfig{Driver: config.DriverPostgres, MigrationStrategy: "GOOSE"}, want: "goose"},
		{name: "unknown strategy", cfg: config.DatabaseConfig{Driver: config.DriverMySQL, MigrationStrategy: "flyway"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrategy(&tt.cfg, log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.GetName())
		})
	}
}

func TestEmbeddedScripts(t *testing.T) {
	for _, dir := range []string{"scripts/mysql", "scripts/postgres"} {
		entries, err := fs.ReadDir(scripts, dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}

func TestManager_AutoMigrateSQLite(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log := logger.NewNopLogger()
	m := NewManager(NewGormAutoMigrateStrategy(log), log)
	require.NoError(t, m.Migrate(gdb))

	_, versioned := m.Versioned()
	assert.False(t, versioned)

	for _, table := range []string{"users", "tables", "menu_items", "orders", "order_items", "printers", "print_jobs", "calls"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
}

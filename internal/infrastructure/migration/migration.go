package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

const (
	StrategyAuto  = "auto"
	StrategyGoose = "goose"
)

// NewStrategy picks goose when configured for a server database and gorm
// AutoMigrate otherwise. sqlite always uses AutoMigrate.
func NewStrategy(cfg *config.DatabaseConfig, log logger.Interface) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.MigrationStrategy))

	switch {
	case cfg.Driver == config.DriverSQLite, name == "", name == StrategyAuto:
		return NewGormAutoMigrateStrategy(log), nil
	case name == StrategyGoose:
		return NewGooseStrategy(cfg.Driver, log)
	default:
		return nil, fmt.Errorf("unknown migration strategy: %q", cfg.MigrationStrategy)
	}
}

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Versioned returns the strategy when it supports rollback and status.
func (m *Manager) Versioned() (Versioned, bool) {
	v, ok := m.strategy.(Versioned)
	return v, ok
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

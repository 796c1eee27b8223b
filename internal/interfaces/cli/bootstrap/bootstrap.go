// Package bootstrap holds the startup steps shared by the cassa commands.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/auth"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/config"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/database"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/migration"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/printing"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/repository"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/seed"
	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// Load reads the configuration and initializes the process logger.
func Load(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == constants.EnvDevelopment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase initializes the process connection.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

func NewMigrationManager(cfg *config.Config, log logger.Interface) (*migration.Manager, error) {
	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return migration.NewManager(strategy, log), nil
}

// Seed loads path (or the built-in demo data when empty) and writes it.
func Seed(ctx context.Context, gdb *gorm.DB, cfg *config.Config, path string, log logger.Interface) (*seed.Report, error) {
	data, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}

	adapters, err := printing.NewRegistry(cfg.Printing, log)
	if err != nil {
		return nil, err
	}

	seeder := seed.NewSeeder(
		repository.NewUserRepository(gdb),
		repository.NewTableRepository(gdb),
		repository.NewMenuRepository(gdb),
		repository.NewPrinterRepository(gdb),
		adapters,
		auth.NewStaffPasswords(cfg.JWT),
		db.NewTransactionManager(gdb),
		log,
	)
	return seeder.Run(ctx, data)
}

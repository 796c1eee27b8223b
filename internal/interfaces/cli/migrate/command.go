package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/database"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/migration"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/bootstrap"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the database schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a number of goose migrations. Not available with the auto strategy.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*gorm.DB, *migration.Manager, logger.Interface, error) {
	cfg, log, err := bootstrap.Load(env)
	if err != nil {
		return nil, nil, nil, err
	}

	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	manager, err := bootstrap.NewMigrationManager(cfg, log)
	if err != nil {
		_ = database.Close()
		return nil, nil, nil, err
	}

	return gdb, manager, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	gdb, manager, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	return manager.Migrate(gdb)
}

func runDown(cmd *cobra.Command, args []string) error {
	gdb, manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	versioned, ok := manager.Versioned()
	if !ok {
		return fmt.Errorf("down migration is only supported with the goose strategy")
	}

	log.Infow("running down migrations", "steps", steps)
	if err := versioned.MigrateDown(gdb, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gdb, manager, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	versioned, ok := manager.Versioned()
	if !ok {
		fmt.Printf("Migration strategy %q keeps no version history.\n", manager.GetStrategy().GetName())
		return nil
	}

	version, err := versioned.GetVersion(gdb)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Current Version: %d\n", version)

	return versioned.Status(gdb)
}

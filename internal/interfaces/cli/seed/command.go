package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/database"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/bootstrap"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load staff, tables, menu and printers",
		Long:  `Seed the database from a YAML file, or from the built-in demo data. Collections that already hold rows are left alone.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (default: built-in demo data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(env)
	if err != nil {
		return err
	}

	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := bootstrap.NewMigrationManager(cfg, log)
	if err != nil {
		return err
	}
	if err := manager.Migrate(gdb); err != nil {
		return err
	}

	report, err := bootstrap.Seed(cmd.Context(), gdb, cfg, file, log)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seeded %d users, %d tables, %d menu items, %d printers\n",
		report.Users, report.Tables, report.MenuItems, report.Printers)
	return nil
}

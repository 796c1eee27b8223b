package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/migrate"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/seed"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/server"
	"github.com/lorenzobigazzi0/cassa/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cassa",
		Short:   "Cassa - realtime order coordination for the restaurant floor",
		Long:    `Cassa routes orders between waiters, bar and till, prints tickets and relays staff calls in real time.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

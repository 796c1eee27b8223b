package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/database"
	httpRouter "github.com/lorenzobigazzi0/cassa/internal/interfaces/http"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/cli/bootstrap"
	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
	"github.com/lorenzobigazzi0/cassa/internal/shared/version"
)

var (
	env      string
	seedFile string
	withSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP and websocket server",
		Long:  `Start the cassa floor server: REST API, realtime channels and print dispatch.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Seed demo data before serving")
	cmd.Flags().StringVar(&seedFile, "seed-file", "", "YAML seed file used with --seed (default: built-in demo data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(env)
	if err != nil {
		return err
	}

	log.Infow("starting server", "version", version.String(), "environment", cfg.Server.Mode, "database", cfg.Database.Driver)

	gin.SetMode(mapModeToGin(cfg.Server.Mode))
	gin.DefaultWriter = io.Discard

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

	ctx := cmd.Context()

	if withSeed {
		report, err := bootstrap.Seed(ctx, gdb, cfg, seedFile, log)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		log.Infow("seed completed", "users", report.Users, "tables", report.Tables, "menu_items", report.MenuItems, "printers", report.Printers)
	}

	container, err := httpRouter.NewContainer(gdb, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	if err := container.ValidatePrinters(ctx); err != nil {
		return fmt.Errorf("printer configuration rejected: %w", err)
	}

	container.SetupRoutes()

	srv := &http.Server{
		Addr:        cfg.Server.GetAddr(),
		Handler:     container.GetEngine(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	// Hijacked sockets are not tracked by Shutdown. The hook runs once the
	// listener is closed, so no upgrade can slip in behind it.
	srv.RegisterOnShutdown(container.Shutdown)

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapModeToGin(mode string) string {
	switch mode {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

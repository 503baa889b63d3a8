package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"menu/cmd"
	"menu/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	logger := newLogger()

	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	db, err := postgres.Open(config.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app := cmd.NewCompositionRoot(config, db, logger)

	router, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "port", config.HTTPPort)
		errCh <- router.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.InfoContext(ctx, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return router.Shutdown(shutdownCtx)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "burger/internal/adapters/in/http"
	"burger/internal/adapters/out/catalog/yamlcatalog"
	"burger/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and the background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return err
			}

			logger, err := NewLogger(os.Stdout, cfg.LogLevel)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	catalog, err := yamlcatalog.NewCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	app := NewCompositionRoot(cfg, gormDB, catalog, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpadapter.NewRouter(app.CreateHTTPServer(), logger)

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "address", cfg.HTTPAddress())
		errCh <- e.Start(cfg.HTTPAddress())
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

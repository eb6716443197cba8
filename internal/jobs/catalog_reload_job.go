package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// reloadTimeout bounds a single catalog reload.
const reloadTimeout = 30 * time.Second

// CatalogReloader re-reads a catalog source.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// CatalogReloadJob manages the scheduled reload of the catalog.
type CatalogReloadJob struct {
	reloader CatalogReloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogReloadJob creates a job that calls reloader.Reload on schedule.
func NewCatalogReloadJob(reloader CatalogReloader, schedule string, logger *slog.Logger) *CatalogReloadJob {
	return &CatalogReloadJob{
		reloader: reloader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_reload_job"),
	}
}

// Start registers the reload on the schedule and starts the scheduler.
func (j *CatalogReloadJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		_ = j.Run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reload job started", "schedule", j.schedule)
	return nil
}

// Run performs one reload.
func (j *CatalogReloadJob) Run(ctx context.Context) error {
	if err := j.reloader.Reload(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Catalog reload job failed", "error", err)
		return err
	}

	j.logger.DebugContext(ctx, "Catalog reloaded")
	return nil
}

// Stop stops the scheduler and waits for a running reload to finish.
func (j *CatalogReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog reload job stopped")
}

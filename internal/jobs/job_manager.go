package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogReloadJob *CatalogReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
// The catalog reload job is left out when reloadSchedule is empty.
func NewJobManager(
	catalog CatalogReloader,
	reloadSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reloadSchedule != "" {
		jm.catalogReloadJob = NewCatalogReloadJob(catalog, reloadSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.catalogReloadJob != nil {
		if err := jm.catalogReloadJob.Start(); err != nil {
			return fmt.Errorf("failed to start catalog reload job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.catalogReloadJob != nil {
		jm.catalogReloadJob.Stop()
	}
}

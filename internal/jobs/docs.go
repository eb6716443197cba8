// Package jobs provides scheduled background tasks for the burger service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with a seconds field,
// so schedules have six fields ("0 */5 * * * *") or a descriptor ("@every 5m").
//
// # Available Jobs
//
// 1. CatalogReloadJob - re-reads the bun and ingredient catalog on a schedule
//
// # Usage
//
//	jobManager := jobs.NewJobManager(catalog, cfg.CatalogReloadSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the reload job.
//
// # Error Handling
//
// A failed reload is logged and the previous catalog stays in use.
package jobs

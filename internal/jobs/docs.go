// Package jobs provides scheduled background tasks for the sales system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. OrderExpirationJob - Runs every minute to cancel pending orders whose
// payment never arrived within the configured window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiration job uses the cron expression "0 * * * * *", running at the
// top of every minute. Stale orders are measured against a configurable age
// so the sweep frequency only bounds how late an expiration can fire.
//
// # Error Handling
//
// - Expiration job logs all errors as they indicate system issues
// - An empty sweep is not an error, the handler simply finds nothing to cancel
// - Failed job starts will stop any already running jobs
package jobs

// Package jobs provides scheduled background tasks for the payment
// collection pipeline.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the collection service.
//
// # Available Jobs
//
// 1. AccessCodeExpiryJob - Runs every minute to invalidate delivery access codes past their expiry
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireAccessCodesHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *", running at the
// top of every minute. Expiry is a sweep over already-stale rows, so a
// minute of slack is acceptable; the read side refuses expired codes by
// timestamp regardless of whether the sweep has reached them.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; the job never
// stops itself on error.
package jobs

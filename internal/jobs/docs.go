// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required for order fulfillment.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Periodically cancels pending orders that were
// never moved into processing within the configured time window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
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
// The cancellation job uses the cron expression "0 * * * * *", running once a
// minute. Each run cancels every pending order older than the configured TTL in
// a single transaction.
//
// # Error Handling
//
// A failed run logs the error and leaves the batch untouched; the next tick
// retries the same orders.
package jobs

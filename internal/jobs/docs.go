// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron entries built on github.com/robfig/cron/v3 with seconds precision.
//
// # Available Jobs
//
//  1. CodeSequencePruneJob - daily at 03:00 UTC, deletes order code counters older than a week
//  2. StatsReportJob - every minute, logs the dashboard statistics as one structured line
//
// # Usage
//
//	jobManager := jobs.NewJobManager(pruneHandler, statsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next scheduled run proceeds normally.
// If a job fails to start, jobs already started are stopped.
package jobs

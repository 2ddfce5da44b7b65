// Package jobs provides optional scheduled background tasks for the print
// order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The core never schedules work itself; every run here is an ordinary,
// request-scoped invocation of a command handler.
//
// # Available Jobs
//
// 1. UpstreamSyncJob - imports new orders from the upstream shop (UPSTREAM_SYNC_SCHEDULE)
// 2. StatsSnapshotJob - stores the day's statistics snapshot (STATS_SNAPSHOT_SCHEDULE)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncHandler, snapshotHandler, jobs.Schedules{
//		UpstreamSync:  "@every 15m",
//		StatsSnapshot: "55 23 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@every 15m". A job without a schedule stays disabled.
//
// # Error Handling
//
// - A capability that is not configured is logged as a warning and skipped
// - Every other failure is logged as an error; the next run starts fresh
// - Failed job starts will stop any already running jobs
package jobs

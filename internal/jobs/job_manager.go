package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// runTimeout bounds a single scheduled run.
const runTimeout = 2 * time.Minute

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	upstreamSyncJob  *UpstreamSyncJob
	statsSnapshotJob *StatsSnapshotJob
}

// Schedules holds the cron expressions of the optional jobs. An empty
// expression disables the job.
type Schedules struct {
	UpstreamSync  string
	StatsSnapshot string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncHandler SyncHandler,
	snapshotHandler SnapshotHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		upstreamSyncJob:  NewUpstreamSyncJob(syncHandler, schedules.UpstreamSync, logger),
		statsSnapshotJob: NewStatsSnapshotJob(snapshotHandler, schedules.StatsSnapshot, time.Now, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.upstreamSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start upstream sync job: %w", err)
	}

	if err := jm.statsSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.upstreamSyncJob.Stop()
		return fmt.Errorf("failed to start stats snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsSnapshotJob.Stop()
	jm.upstreamSyncJob.Stop()
}

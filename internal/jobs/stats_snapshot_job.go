package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SnapshotHandler stores a statistics snapshot.
type SnapshotHandler interface {
	Handle(ctx context.Context, cmd commands.SaveStatsSnapshotCommand) (string, error)
}

// StatsSnapshotJob writes the day's statistics snapshot on a schedule.
type StatsSnapshotJob struct {
	handler  SnapshotHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsSnapshotJob creates the job. An empty schedule leaves it disabled.
func NewStatsSnapshotJob(handler SnapshotHandler, schedule string, now func() time.Time, logger *slog.Logger) *StatsSnapshotJob {
	if now == nil {
		now = time.Now
	}
	return &StatsSnapshotJob{
		handler:  handler,
		schedule: schedule,
		now:      now,
		cron:     cron.New(),
		logger:   logger.With("component", "stats_snapshot_job"),
	}
}

// Enabled reports whether a schedule was configured.
func (j *StatsSnapshotJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the run on the configured schedule and starts the scheduler.
func (j *StatsSnapshotJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Stats snapshot job disabled (no schedule)")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *StatsSnapshotJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}

func (j *StatsSnapshotJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cmd, err := commands.NewSaveStatsSnapshotCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
		return
	}

	key, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrNotConfigured) {
			j.logger.WarnContext(ctx, "Stats snapshot skipped", "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Stats snapshot stored", "key", key)
}

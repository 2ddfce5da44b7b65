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

// SyncHandler imports orders from the upstream shop.
type SyncHandler interface {
	Handle(ctx context.Context, cmd commands.SyncUpstreamOrdersCommand) (commands.SyncResult, error)
}

// UpstreamSyncJob periodically imports new upstream orders.
// Each run is an ordinary sync invocation bounded by runTimeout.
type UpstreamSyncJob struct {
	handler  SyncHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewUpstreamSyncJob creates the job. An empty schedule leaves it disabled.
func NewUpstreamSyncJob(handler SyncHandler, schedule string, logger *slog.Logger) *UpstreamSyncJob {
	return &UpstreamSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "upstream_sync_job"),
	}
}

// Enabled reports whether a schedule was configured.
func (j *UpstreamSyncJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the run on the configured schedule and starts the scheduler.
func (j *UpstreamSyncJob) Start() error {
	if !j.Enabled() {
		j.logger.InfoContext(context.Background(), "Upstream sync job disabled (no schedule)")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Upstream sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running import to finish.
func (j *UpstreamSyncJob) Stop() {
	if !j.Enabled() {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Upstream sync job stopped")
}

func (j *UpstreamSyncJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	started := time.Now()
	result, err := j.handler.Handle(ctx, commands.NewSyncUpstreamOrdersCommand())
	if err != nil {
		if errors.Is(err, errs.ErrNotConfigured) {
			j.logger.WarnContext(ctx, "Upstream sync skipped", "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Upstream sync job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Upstream sync finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"duration", time.Since(started),
	)
}

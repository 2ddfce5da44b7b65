package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSyncHandler struct{ mock.Mock }

func (m *MockSyncHandler) Handle(ctx context.Context, cmd commands.SyncUpstreamOrdersCommand) (commands.SyncResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SyncResult), args.Error(1)
}

type MockSnapshotHandler struct{ mock.Mock }

func (m *MockSnapshotHandler) Handle(ctx context.Context, cmd commands.SaveStatsSnapshotCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestUpstreamSyncJob_Run(t *testing.T) {
	t.Run("logs import counts", func(t *testing.T) {
		logger, buf := bufferLogger()
		handler := new(MockSyncHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(commands.SyncResult{Imported: 3, Skipped: 1}, nil).Once()

		NewUpstreamSyncJob(handler, "@every 1m", logger).run()

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "imported=3")
		assert.Contains(t, buf.String(), "skipped=1")
	})

	t.Run("unconfigured source is a warning", func(t *testing.T) {
		logger, buf := bufferLogger()
		handler := new(MockSyncHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.SyncResult{}, errs.NewNotConfiguredError("woocommerce", "WOOCOMMERCE_URL")).Once()

		NewUpstreamSyncJob(handler, "@every 1m", logger).run()

		assert.Contains(t, buf.String(), "level=WARN")
		assert.NotContains(t, buf.String(), "level=ERROR")
	})

	t.Run("other failures are errors", func(t *testing.T) {
		logger, buf := bufferLogger()
		handler := new(MockSyncHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.SyncResult{}, errs.NewUpstreamError("woocommerce", errors.New("502"))).Once()

		NewUpstreamSyncJob(handler, "@every 1m", logger).run()

		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestStatsSnapshotJob_Run(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 55, 0, 0, time.UTC)

	t.Run("passes the job clock to the command", func(t *testing.T) {
		logger, buf := bufferLogger()
		handler := new(MockSnapshotHandler)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SaveStatsSnapshotCommand) bool {
			return cmd.Now().Equal(now)
		})).Return("stats/2026-10-15.json", nil).Once()

		NewStatsSnapshotJob(handler, "55 23 * * *", func() time.Time { return now }, logger).run()

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "stats/2026-10-15.json")
	})

	t.Run("unconfigured store is a warning", func(t *testing.T) {
		logger, buf := bufferLogger()
		handler := new(MockSnapshotHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return("", errs.NewNotConfiguredError("object store", "bucket")).Once()

		NewStatsSnapshotJob(handler, "55 23 * * *", func() time.Time { return now }, logger).run()

		assert.Contains(t, buf.String(), "level=WARN")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("jobs without schedules stay disabled", func(t *testing.T) {
		logger, _ := bufferLogger()
		sync := new(MockSyncHandler)
		snapshot := new(MockSnapshotHandler)
		jm := NewJobManager(sync, snapshot, Schedules{}, logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.False(t, jm.upstreamSyncJob.Enabled())
		assert.False(t, jm.statsSnapshotJob.Enabled())
		sync.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		snapshot.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		logger, _ := bufferLogger()
		jm := NewJobManager(new(MockSyncHandler), new(MockSnapshotHandler), Schedules{
			UpstreamSync:  "@every 1h",
			StatsSnapshot: "not a schedule",
		}, logger)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "stats snapshot job")
	})

	t.Run("valid schedules start and stop", func(t *testing.T) {
		logger, buf := bufferLogger()
		jm := NewJobManager(new(MockSyncHandler), new(MockSnapshotHandler), Schedules{
			UpstreamSync:  "@every 1h",
			StatsSnapshot: "55 23 * * *",
		}, logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Contains(t, buf.String(), "Upstream sync job started")
		assert.Contains(t, buf.String(), "Stats snapshot job stopped")
	})
}

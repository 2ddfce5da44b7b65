package commands_test

import (
	"encoding/json"
	"testing"
	"time"

	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/domain/services"
	"printorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsSnapshotKey(t *testing.T) {
	assert.Equal(t, "stats/2026-10-15.json", commands.StatsSnapshotKey(fixedNow))
}

func TestSaveStatsSnapshotCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	loc := time.FixedZone("UTC-10", -10*3600)

	t.Run("should write the day's snapshot in the configured location", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{
			storedOrder(t, stage.Printing, ""),
			storedOrder(t, stage.Stage("Legacy"), ""),
		}, nil).Once()

		var written []byte
		writer := new(MockSnapshotWriter)
		// 09:00 UTC on the 15th is still the 14th in UTC-10.
		writer.On("PutJSON", ctx, "stats/2026-10-14.json", mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(2).([]byte) }).
			Return(nil).Once()

		h := commands.NewSaveStatsSnapshotCommandHandler(repo, services.NewStatsAggregator(3), writer, loc)
		cmd, err := commands.NewSaveStatsSnapshotCommand(fixedNow)
		require.NoError(t, err)

		key, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "stats/2026-10-14.json", key)

		var snapshot commands.StatsSnapshot
		require.NoError(t, json.Unmarshal(written, &snapshot))
		assert.Equal(t, 2, snapshot.Total)
		assert.Equal(t, 2, snapshot.MissingPdfs)
		assert.Len(t, snapshot.ByStage, 10)
		assert.Equal(t, 1, snapshot.ByStage["Uploaded"])
		assert.Equal(t, 1, snapshot.ByStage["Printing"])
	})

	t.Run("unconfigured store should fail", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()
		writer := new(MockSnapshotWriter)
		writer.On("PutJSON", ctx, mock.Anything, mock.Anything).
			Return(errs.NewNotConfiguredError("object store", "bucket")).Once()

		h := commands.NewSaveStatsSnapshotCommandHandler(repo, services.NewStatsAggregator(3), writer, time.UTC)
		cmd, _ := commands.NewSaveStatsSnapshotCommand(fixedNow)

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNotConfigured)
	})

	t.Run("zero time should be rejected", func(t *testing.T) {
		_, err := commands.NewSaveStatsSnapshotCommand(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

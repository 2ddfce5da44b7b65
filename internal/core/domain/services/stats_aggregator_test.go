package services_test

import (
	"testing"
	"time"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	local = time.FixedZone("UTC+5", 5*3600)
	now   = time.Date(2026, 10, 15, 10, 0, 0, 0, local)
)

func restore(t *testing.T, details order.Details, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), details, "", createdAt.UnixMilli(), createdAt.UnixMilli())
	require.NoError(t, err)
	return o
}

func sum(byStage map[stage.Stage]int) int {
	total := 0
	for _, n := range byStage {
		total += n
	}
	return total
}

func TestStatsAggregator_Compute(t *testing.T) {
	agg := services.NewStatsAggregator(services.DefaultDueSoonDays)

	t.Run("empty set should seed every stage at zero", func(t *testing.T) {
		stats := agg.Compute(nil, now)

		assert.Equal(t, 0, stats.Total)
		assert.Len(t, stats.ByStage, 10)
		for _, s := range stage.All() {
			count, ok := stats.ByStage[s]
			assert.True(t, ok, s)
			assert.Zero(t, count)
		}
	})

	t.Run("dueSoon should include today+2 and exclude absent and today+5", func(t *testing.T) {
		orders := []*order.Order{
			restore(t, order.Details{}, now),
			restore(t, order.Details{Deadline: "2026-10-17"}, now),
			restore(t, order.Details{Deadline: "2026-10-20"}, now),
		}

		stats := agg.Compute(orders, now)

		assert.Equal(t, 1, stats.DueSoon)
	})

	t.Run("dueSoon window should be inclusive on both ends", func(t *testing.T) {
		orders := []*order.Order{
			restore(t, order.Details{Deadline: "2026-10-15"}, now),
			restore(t, order.Details{Deadline: "2026-10-18"}, now),
			restore(t, order.Details{Deadline: "2026-10-14"}, now),
			restore(t, order.Details{Deadline: "2026-10-19"}, now),
			restore(t, order.Details{Deadline: "soon"}, now),
		}

		stats := agg.Compute(orders, now)

		assert.Equal(t, 2, stats.DueSoon)
	})

	t.Run("newToday should use the local calendar of now", func(t *testing.T) {
		// 20:30 UTC on the 14th is 01:30 on the 15th in UTC+5.
		lateUTC := time.Date(2026, 10, 14, 20, 30, 0, 0, time.UTC)
		orders := []*order.Order{
			restore(t, order.Details{}, lateUTC),
			restore(t, order.Details{}, now.Add(-24*time.Hour)),
			restore(t, order.Details{}, now.Add(-time.Hour)),
		}

		stats := agg.Compute(orders, now)

		assert.Equal(t, 2, stats.NewToday)
	})

	t.Run("missingPdfs should count orders without a key", func(t *testing.T) {
		orders := []*order.Order{
			restore(t, order.Details{S3Key: "orders/1-a.pdf"}, now),
			restore(t, order.Details{}, now),
			restore(t, order.Details{S3Key: ""}, now),
		}

		stats := agg.Compute(orders, now)

		assert.Equal(t, 2, stats.MissingPdfs)
	})

	t.Run("unrecognised stages should bucket into the first stage", func(t *testing.T) {
		orders := []*order.Order{
			restore(t, order.Details{Stage: "Legacy"}, now),
			restore(t, order.Details{Stage: "Printing"}, now),
			restore(t, order.Details{}, now),
			nil,
		}

		stats := agg.Compute(orders, now)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.ByStage[stage.Uploaded])
		assert.Equal(t, 1, stats.ByStage[stage.Printing])
		assert.Equal(t, stats.Total, sum(stats.ByStage))
		assert.NotContains(t, stats.ByStage, stage.Stage("Legacy"))
	})

	t.Run("should be deterministic for identical inputs", func(t *testing.T) {
		orders := []*order.Order{
			restore(t, order.Details{Stage: "Packed", Deadline: "2026-10-16"}, now),
			restore(t, order.Details{Stage: "Odd", S3Key: "k"}, now.Add(-48*time.Hour)),
		}

		first := agg.Compute(orders, now)
		second := agg.Compute(orders, now)

		assert.Equal(t, first, second)
	})
}

func TestNewStatsAggregator(t *testing.T) {
	assert.Equal(t, 7, services.NewStatsAggregator(7).DueSoonDays())
	assert.Equal(t, services.DefaultDueSoonDays, services.NewStatsAggregator(-1).DueSoonDays())
}

package commands

import (
	"context"
	"encoding/json"
	"time"

	"printorders/internal/core/domain/services"
)

// SnapshotWriter stores JSON documents in the object store.
type SnapshotWriter interface {
	PutJSON(ctx context.Context, key string, body []byte) error
}

// StatsSnapshot is the stored form of a statistics run.
type StatsSnapshot struct {
	TakenAt     time.Time      `json:"takenAt"`
	NewToday    int            `json:"newToday"`
	DueSoon     int            `json:"dueSoon"`
	MissingPdfs int            `json:"missingPdfs"`
	ByStage     map[string]int `json:"byStage"`
	Total       int            `json:"total"`
}

// SaveStatsSnapshotCommandHandler computes the statistics for the command's
// instant and writes them to stats/<date>.json, one document per day.
// Rewriting a day's snapshot replaces it.
type SaveStatsSnapshotCommandHandler struct {
	orders     OrderLister
	aggregator services.StatsAggregator
	writer     SnapshotWriter
	location   *time.Location
}

func NewSaveStatsSnapshotCommandHandler(
	orders OrderLister,
	aggregator services.StatsAggregator,
	writer SnapshotWriter,
	location *time.Location,
) SaveStatsSnapshotCommandHandler {
	if location == nil {
		location = time.Local
	}
	return SaveStatsSnapshotCommandHandler{
		orders:     orders,
		aggregator: aggregator,
		writer:     writer,
		location:   location,
	}
}

// Handle returns the key the snapshot was written to.
func (h SaveStatsSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveStatsSnapshotCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return "", err
	}

	now := cmd.Now().In(h.location)
	stats := h.aggregator.Compute(all, now)

	snapshot := StatsSnapshot{
		TakenAt:     now,
		NewToday:    stats.NewToday,
		DueSoon:     stats.DueSoon,
		MissingPdfs: stats.MissingPdfs,
		ByStage:     make(map[string]int, len(stats.ByStage)),
		Total:       stats.Total,
	}
	for s, n := range stats.ByStage {
		snapshot.ByStage[s.String()] = n
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	key := StatsSnapshotKey(now)
	if err = h.writer.PutJSON(ctx, key, body); err != nil {
		return "", err
	}
	return key, nil
}

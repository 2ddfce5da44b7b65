package queries

import (
	"context"
	"slices"
	"strings"
)

// ListStatsSnapshotsQueryHandler returns snapshot names, newest first. The
// listing is best effort: an unavailable object store yields an empty list.
type ListStatsSnapshotsQueryHandler struct {
	snapshots SnapshotReader
}

func NewListStatsSnapshotsQueryHandler(snapshots SnapshotReader) ListStatsSnapshotsQueryHandler {
	return ListStatsSnapshotsQueryHandler{snapshots: snapshots}
}

func (h ListStatsSnapshotsQueryHandler) Handle(ctx context.Context, query ListStatsSnapshotsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for _, key := range h.snapshots.ListKeys(ctx, statsSnapshotPrefix) {
		name := strings.TrimPrefix(key, statsSnapshotPrefix)
		if !strings.HasSuffix(name, statsSnapshotSuffix) || strings.Contains(name, "/") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, statsSnapshotSuffix))
	}

	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

// GetStatsSnapshotQueryHandler returns the stored JSON document unchanged.
type GetStatsSnapshotQueryHandler struct {
	snapshots SnapshotReader
}

func NewGetStatsSnapshotQueryHandler(snapshots SnapshotReader) GetStatsSnapshotQueryHandler {
	return GetStatsSnapshotQueryHandler{snapshots: snapshots}
}

func (h GetStatsSnapshotQueryHandler) Handle(ctx context.Context, query GetStatsSnapshotQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.snapshots.GetJSON(ctx, query.Key())
}

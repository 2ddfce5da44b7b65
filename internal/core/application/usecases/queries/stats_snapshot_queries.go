package queries

import (
	"errors"
	"strings"
	"time"

	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

const (
	statsSnapshotPrefix = "stats/"
	statsSnapshotSuffix = ".json"
	snapshotNameLayout  = "2006-01-02"
)

var (
	ErrListStatsSnapshotsQueryIsNotConstructed = errors.New(
		"ListStatsSnapshotsQuery must be created via NewListStatsSnapshotsQuery constructor",
	)
	ErrGetStatsSnapshotQueryIsNotConstructed = errors.New(
		"GetStatsSnapshotQuery must be created via NewGetStatsSnapshotQuery constructor",
	)
)

// ListStatsSnapshotsQuery lists the dates a statistics snapshot exists for.
type ListStatsSnapshotsQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatsSnapshotsQuery() ListStatsSnapshotsQuery {
	return ListStatsSnapshotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStatsSnapshotsQuery) Validate() error {
	return q.guard.Validate(ErrListStatsSnapshotsQueryIsNotConstructed)
}

// GetStatsSnapshotQuery reads the snapshot of one day. name is the date in
// YYYY-MM-DD form, with or without the ".json" suffix.
type GetStatsSnapshotQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetStatsSnapshotQuery(name string) (GetStatsSnapshotQuery, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), statsSnapshotSuffix)
	if name == "" {
		return GetStatsSnapshotQuery{}, errs.NewValueIsRequiredError("name")
	}
	if _, err := time.Parse(snapshotNameLayout, name); err != nil {
		return GetStatsSnapshotQuery{}, errs.NewValueIsInvalidErrorWithCause("name", err)
	}
	return GetStatsSnapshotQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsSnapshotQueryIsNotConstructed)
}

// Name returns the snapshot date.
func (q GetStatsSnapshotQuery) Name() string {
	return q.name
}

// Key returns the object-store key of the snapshot.
func (q GetStatsSnapshotQuery) Key() string {
	return statsSnapshotPrefix + q.name + statsSnapshotSuffix
}

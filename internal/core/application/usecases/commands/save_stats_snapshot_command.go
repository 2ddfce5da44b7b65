package commands

import (
	"errors"
	"time"

	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

var ErrSaveStatsSnapshotCommandIsNotConstructed = errors.New(
	"SaveStatsSnapshotCommand must be created via NewSaveStatsSnapshotCommand constructor",
)

// StatsSnapshotPrefix is the object-store prefix snapshots are written under.
const StatsSnapshotPrefix = "stats/"

// SaveStatsSnapshotCommand persists the statistics computed at now.
type SaveStatsSnapshotCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewSaveStatsSnapshotCommand(now time.Time) (SaveStatsSnapshotCommand, error) {
	if now.IsZero() {
		return SaveStatsSnapshotCommand{}, errs.NewValueIsRequiredError("now")
	}
	return SaveStatsSnapshotCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveStatsSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveStatsSnapshotCommandIsNotConstructed)
}

func (c SaveStatsSnapshotCommand) Now() time.Time {
	return c.now
}

// StatsSnapshotKey returns stats/<YYYY-MM-DD>.json for the calendar date of at.
func StatsSnapshotKey(at time.Time) string {
	return StatsSnapshotPrefix + at.Format("2006-01-02") + ".json"
}

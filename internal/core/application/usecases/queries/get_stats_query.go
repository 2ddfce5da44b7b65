package queries

import (
	"errors"
	"time"

	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery computes the administrative statistics at now.
type GetStatsQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetStatsQuery(now time.Time) (GetStatsQuery, error) {
	if now.IsZero() {
		return GetStatsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetStatsQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

func (q GetStatsQuery) Now() time.Time {
	return q.now
}

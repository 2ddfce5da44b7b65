package services

import (
	"time"

	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
)

// DefaultDueSoonDays is the inclusive look-ahead window for Stats.DueSoon.
const DefaultDueSoonDays = 3

// Stats is the administrative summary of the order set at one instant.
type Stats struct {
	NewToday    int
	DueSoon     int
	MissingPdfs int
	ByStage     map[stage.Stage]int
	Total       int
}

// StatsAggregator computes Stats from a full scan of orders.
//
// Calendar comparisons use the location of the now value passed to Compute,
// so callers decide which local calendar counts as "today".
//
// Example:
//
//	agg := services.NewStatsAggregator(3)
//	stats := agg.Compute(orders, time.Now().In(loc))
//	fmt.Println(stats.ByStage[stage.Printing])
type StatsAggregator struct {
	dueSoonDays int
}

// NewStatsAggregator creates an aggregator with the given due-soon window.
// A negative window falls back to DefaultDueSoonDays.
func NewStatsAggregator(dueSoonDays int) StatsAggregator {
	if dueSoonDays < 0 {
		dueSoonDays = DefaultDueSoonDays
	}
	return StatsAggregator{dueSoonDays: dueSoonDays}
}

// DueSoonDays returns the configured look-ahead window.
func (a StatsAggregator) DueSoonDays() int {
	return a.dueSoonDays
}

// Compute is a pure function of orders and now:
//   - NewToday counts orders created on now's calendar day
//   - DueSoon counts deadlines 0..dueSoonDays days ahead, inclusive; absent or
//     unparseable deadlines are excluded
//   - MissingPdfs counts orders without an artifact key
//   - ByStage has every stage present; unrecognised stages count as stage.First()
//
// Nil entries in orders are skipped and not counted in Total.
func (a StatsAggregator) Compute(orders []*order.Order, now time.Time) Stats {
	loc := now.Location()
	today := calendarDay(now)

	stats := Stats{ByStage: make(map[stage.Stage]int, len(stage.All()))}
	for _, s := range stage.All() {
		stats.ByStage[s] = 0
	}

	for _, o := range orders {
		if o == nil {
			continue
		}
		stats.Total++

		if calendarDay(time.UnixMilli(o.CreatedAt()).In(loc)).Equal(today) {
			stats.NewToday++
		}

		if due, ok := o.Deadline().Date(loc); ok {
			days := daysBetween(today, calendarDay(due))
			if days >= 0 && days <= a.dueSoonDays {
				stats.DueSoon++
			}
		}

		if !o.HasArtifact() {
			stats.MissingPdfs++
		}

		bucket := o.Stage()
		if !bucket.IsKnown() {
			bucket = stage.First()
		}
		stats.ByStage[bucket]++
	}

	return stats
}

// calendarDay maps t onto midnight UTC of its local calendar date, so that
// day arithmetic is immune to DST shifts in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

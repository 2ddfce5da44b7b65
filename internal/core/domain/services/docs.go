// Package services provides domain services that derive information from a
// set of aggregates rather than belonging to a single one.
//
// The package includes:
//   - StatsAggregator: point-in-time operational metrics over all orders
//
// Services here are pure: they receive already-loaded aggregates and a clock
// value, and never touch storage themselves.
package services

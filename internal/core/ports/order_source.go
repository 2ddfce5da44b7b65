package ports

import (
	"context"
)

// UpstreamOrder is one customer order as reported by the upstream shop,
// already reduced to the fields this service imports.
type UpstreamOrder struct {
	OrderID   string
	BookTitle string
	Binding   string
	Deadline  string
}

// OrderSource is the read-only upstream feed of customer orders.
type OrderSource interface {
	// FetchOrders returns every order the upstream currently reports.
	// Returns a NotConfiguredError when the source has no credentials and an
	// UpstreamError when the upstream call fails.
	FetchOrders(ctx context.Context) ([]UpstreamOrder, error)
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for their callers and never mutate state.
package queries

import (
	"context"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
)

type (
	// OrderReader loads order aggregates outside a transaction.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetAll(ctx context.Context) ([]*order.Order, error)
		GetAllByVendor(ctx context.Context, vendorID string) ([]*order.Order, error)
	}

	// SnapshotReader reads stored statistics snapshots.
	SnapshotReader interface {
		// ListKeys is best effort and returns an empty list when the store is unavailable.
		ListKeys(ctx context.Context, prefix string) []string
		GetJSON(ctx context.Context, key string) ([]byte, error)
	}
)

// Package ports defines the contracts between the print-order core and its
// infrastructure: storage, the object store, identity and the upstream shop.
// Adapters in internal/adapters implement them; tests substitute mocks.
package ports

import (
	"context"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders read through it always pass through order.RestoreOrder, so missing
// stored fields arrive with their defaults applied.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when no row matches the id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no row matches the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order. Returns an ObjectNotFoundError when no row matches.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll returns every stored order. The order of the result carries no
	// business meaning.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByVendor returns the vendor's work queue ordered by deadline, then
	// creation time. Orders without a deadline come last.
	GetAllByVendor(ctx context.Context, vendorID string) ([]*order.Order, error)

	// FindByOrderID looks an order up by its external correlation id.
	// Returns (nil, nil) when none exists.
	FindByOrderID(ctx context.Context, orderID string) (*order.Order, error)
}

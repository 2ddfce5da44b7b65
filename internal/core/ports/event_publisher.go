package ports

import (
	"context"
	"time"
)

// OrderStageChanged is emitted whenever an order's stage moves.
type OrderStageChanged struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"orderId"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	VendorID string    `json:"vendorId,omitempty"`
	At       time.Time `json:"at"`
}

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	// PublishStageChanged blocks until the event is acknowledged.
	PublishStageChanged(ctx context.Context, event OrderStageChanged) error
}

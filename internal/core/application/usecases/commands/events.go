package commands

import (
	"context"
	"time"

	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/ports"
	"printorders/internal/pkg/errs"
)

// publishStageChange emits the event for a performed transition. It runs
// before the transaction commits, so a failed publish rolls the change back.
func publishStageChange(
	ctx context.Context,
	publisher ports.EventPublisher,
	o *order.Order,
	change *order.StageChange,
	at time.Time,
) error {
	if change == nil {
		return nil
	}

	err := publisher.PublishStageChanged(ctx, ports.OrderStageChanged{
		ID:       o.ID().String(),
		OrderID:  o.OrderID(),
		From:     change.From.String(),
		To:       change.To.String(),
		VendorID: o.VendorID(),
		At:       at.UTC(),
	})
	if err != nil {
		return errs.NewUpstreamError("event publisher", err)
	}
	return nil
}

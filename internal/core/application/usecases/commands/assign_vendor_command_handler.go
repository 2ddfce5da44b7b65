package commands

import (
	"context"
	"time"

	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/ports"
)

// AssignVendorCommandHandler assigns an order to an active vendor and, for
// orders not yet that far, advances the stage to "Assigned to Vendor".
//
// Business rules:
//   - the vendor must exist (ObjectNotFoundError) and be active (ValueIsInvalidError)
//   - the stage never moves backward
type AssignVendorCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewAssignVendorCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	now func() time.Time,
) AssignVendorCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AssignVendorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

func (h AssignVendorCommandHandler) Handle(ctx context.Context, cmd AssignVendorCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, err
	}
	if err = v.CanTakeOrders(); err != nil {
		return nil, err
	}

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	change, err := current.AssignVendor(v.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = publishStageChange(ctx, h.publisher, current, change, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}

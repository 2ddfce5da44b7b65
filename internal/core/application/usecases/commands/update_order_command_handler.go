package commands

import (
	"context"
	"time"

	"printorders/internal/core/application/access"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates. A stage in the patch is
// checked against the stage graph; a rejected patch leaves the stored order
// untouched. Stage changes are published before the transaction commits.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, stage.NewGraph(stage.Permissive), publisher, time.Now)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // backward move or malformed field
//	}
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	graph      stage.Graph
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	graph stage.Graph,
	publisher ports.EventPublisher,
	now func() time.Time,
) UpdateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		graph:      graph,
		publisher:  publisher,
		now:        now,
	}
}

// Handle loads the order, checks the caller may apply the patch, applies it
// and stores the result.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = access.AuthorizeOrderPatch(cmd.Caller(), current, cmd.Patch()); err != nil {
		return nil, err
	}

	now := h.now()
	change, err := current.Apply(cmd.Patch(), h.graph, now)
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

package queries

import (
	"context"

	"printorders/internal/core/application/access"
	"printorders/internal/core/domain/model/order"
)

// GetOrderQueryHandler returns a single order, or an ObjectNotFoundError.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.ID())
	if err != nil {
		return nil, err
	}

	if err = access.AuthorizeOrderRead(query.Caller(), o); err != nil {
		return nil, err
	}
	return o, nil
}

package queries

import (
	"cmp"
	"context"
	"slices"

	"printorders/internal/core/domain/model/order"
)

// ListOrdersQueryHandler returns all orders, newest first.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(all, func(a, b *order.Order) int {
		return cmp.Compare(b.CreatedAt(), a.CreatedAt())
	})
	return all, nil
}

// ListVendorOrdersQueryHandler returns a vendor's orders in the order the
// store's work-queue query yields them: by deadline, then creation time.
type ListVendorOrdersQueryHandler struct {
	orders OrderReader
}

func NewListVendorOrdersQueryHandler(orders OrderReader) ListVendorOrdersQueryHandler {
	return ListVendorOrdersQueryHandler{orders: orders}
}

func (h ListVendorOrdersQueryHandler) Handle(ctx context.Context, query ListVendorOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.GetAllByVendor(ctx, query.VendorID())
}

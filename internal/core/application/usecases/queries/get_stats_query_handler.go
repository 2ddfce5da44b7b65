package queries

import (
	"context"
	"time"

	"printorders/internal/core/domain/services"
)

// GetStatsQueryHandler scans all orders and aggregates them. "Today" is the
// calendar day of the query's instant in the configured location.
//
// Example:
//
//	handler := NewGetStatsQueryHandler(orders, services.NewStatsAggregator(3), time.Local)
//	query, _ := NewGetStatsQuery(time.Now())
//	stats, err := handler.Handle(ctx, query)
type GetStatsQueryHandler struct {
	orders     OrderReader
	aggregator services.StatsAggregator
	location   *time.Location
}

func NewGetStatsQueryHandler(
	orders OrderReader,
	aggregator services.StatsAggregator,
	location *time.Location,
) GetStatsQueryHandler {
	if location == nil {
		location = time.Local
	}
	return GetStatsQueryHandler{orders: orders, aggregator: aggregator, location: location}
}

func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (services.Stats, error) {
	if err := query.Validate(); err != nil {
		return services.Stats{}, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return services.Stats{}, err
	}

	return h.aggregator.Compute(all, query.Now().In(h.location)), nil
}

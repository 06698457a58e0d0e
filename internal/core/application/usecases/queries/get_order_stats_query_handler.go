package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

type orderLister interface {
	Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error)
}

// GetOrderStatsQueryHandler recomputes statistics from the full order set on every call.
type GetOrderStatsQueryHandler struct {
	orders     orderLister
	calculator services.OrderStatsCalculator
}

// NewGetOrderStatsQueryHandler creates the handler on top of an order listing.
func NewGetOrderStatsQueryHandler(orders orderLister) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{orders: orders, calculator: services.NewOrderStatsCalculator()}
}

// Handle returns the current statistics.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (services.OrderStats, error) {
	if err := query.Validate(); err != nil {
		return services.OrderStats{}, err
	}

	all, err := NewListOrdersQuery()
	if err != nil {
		return services.OrderStats{}, err
	}
	listed, err := h.orders.Handle(ctx, all)
	if err != nil {
		return services.OrderStats{}, err
	}

	orders := make([]*order.Order, 0, len(listed))
	for _, r := range listed {
		orders = append(orders, r.Order)
	}
	return h.calculator.Calculate(orders), nil
}

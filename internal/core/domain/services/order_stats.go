package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderStats is the dashboard summary of a set of orders.
//
// Buckets:
//   - Pending: PLACED
//   - Accepted: ACCEPTED, COOKED, PACKED
//   - Ready: READY, OUT_FOR_DELIVERY
//   - Delivered: DELIVERED, whose totals also sum into TotalRevenue
//
// CANCELLED orders are not counted.
type OrderStats struct {
	Pending      int
	Accepted     int
	Ready        int
	Delivered    int
	TotalRevenue kernel.Money
}

// OrderStatsCalculator recomputes OrderStats from scratch for every call.
// Order volumes are small, so there is no incremental state to keep in sync.
//
// Example:
//
//	stats := services.NewOrderStatsCalculator().Calculate(orders)
//	fmt.Printf("%d pending, revenue %s\n", stats.Pending, stats.TotalRevenue)
type OrderStatsCalculator struct{}

// NewOrderStatsCalculator creates a new OrderStatsCalculator.
func NewOrderStatsCalculator() OrderStatsCalculator {
	return OrderStatsCalculator{}
}

// Calculate aggregates orders into OrderStats. Nil entries are skipped.
func (OrderStatsCalculator) Calculate(orders []*order.Order) OrderStats {
	stats := OrderStats{TotalRevenue: kernel.ZeroMoney()}

	for _, o := range orders {
		if o == nil {
			continue
		}

		switch o.Status() {
		case order.Placed:
			stats.Pending++
		case order.Accepted, order.Cooked, order.Packed:
			stats.Accepted++
		case order.Ready, order.OutForDelivery:
			stats.Ready++
		case order.Delivered:
			stats.Delivered++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.Total())
		case order.Cancelled, order.Unknown:
		}
	}

	return stats
}

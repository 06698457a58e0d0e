package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// publishDomainEvents broadcasts the events recorded by o in emission order and
// clears them. It must only run after the change has been committed.
func publishDomainEvents(
	ctx context.Context,
	publisher ports.EventPublisher,
	o *order.Order,
	c *customer.Customer,
	at time.Time,
) {
	for _, kind := range o.DomainEvents() {
		publisher.Publish(ctx, ports.OrderEvent{
			Kind:       kind,
			Order:      o,
			Customer:   c,
			OccurredAt: at,
		})
	}
	o.ClearDomainEvents()
}

// OrderResult is an order together with its customer, as returned to callers
// and broadcast to observers.
type OrderResult struct {
	Order    *order.Order
	Customer *customer.Customer
}

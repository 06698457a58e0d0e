package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
)

// OrderEvent is one broadcast: an event kind and the full order it concerns.
type OrderEvent struct {
	Kind       order.EventKind
	Order      *order.Order
	Customer   *customer.Customer
	OccurredAt time.Time
}

// EventPublisher delivers order events to observers.
//
// Publish is fire-and-forget: it must not block on observers and has no error
// result, because a failed delivery never rolls back the change that caused it.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent)
}

package fanout

import (
	"context"

	"ordering/internal/core/ports"
)

// MultiPublisher forwards every event to each of its publishers in order.
type MultiPublisher []ports.EventPublisher

// Publish implements ports.EventPublisher.
func (m MultiPublisher) Publish(ctx context.Context, event ports.OrderEvent) {
	for _, p := range m {
		p.Publish(ctx, event)
	}
}

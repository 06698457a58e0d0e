// Package fanout delivers order events to the admin observers connected to
// this process.
package fanout

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/ports"
)

// DefaultBufferSize is the number of undelivered events kept per observer.
const DefaultBufferSize = 64

var _ ports.EventPublisher = (*Broker)(nil)

// Broker is an in-memory publish/subscribe registry.
//
// Publish copies the subscriber set under a read lock and then delivers to the
// copy, so observers may subscribe and unsubscribe while a publish is running.
// Each observer owns a bounded buffer. When it is full the event is dropped for
// that observer only and the publisher moves on. Observer channels are never
// closed; a disconnected observer simply stops reading.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string]chan ports.OrderEvent
	bufferSize  int
	logger      *slog.Logger
}

// NewBroker creates a Broker. A non-positive bufferSize selects DefaultBufferSize.
func NewBroker(bufferSize int, logger *slog.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broker{
		subscribers: make(map[string]chan ports.OrderEvent),
		bufferSize:  bufferSize,
		logger:      logger.With("component", "notification-fanout"),
	}
}

// Subscribe registers observerID and returns the channel its events arrive on.
// Subscribing an id again replaces the previous registration.
func (b *Broker) Subscribe(observerID string) <-chan ports.OrderEvent {
	ch := make(chan ports.OrderEvent, b.bufferSize)

	b.mu.Lock()
	b.subscribers[observerID] = ch
	n := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Info("Observer subscribed", "observer_id", observerID, "observers", n)
	return ch
}

// Unsubscribe removes observerID. Unknown ids are ignored.
func (b *Broker) Unsubscribe(observerID string) {
	b.mu.Lock()
	_, ok := b.subscribers[observerID]
	delete(b.subscribers, observerID)
	n := len(b.subscribers)
	b.mu.Unlock()

	if ok {
		b.logger.Info("Observer unsubscribed", "observer_id", observerID, "observers", n)
	}
}

// Len returns the number of subscribed observers.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Publish delivers event to every observer subscribed at the time of the call.
// It never blocks.
func (b *Broker) Publish(ctx context.Context, event ports.OrderEvent) {
	type target struct {
		id string
		ch chan ports.OrderEvent
	}

	b.mu.RLock()
	snapshot := make([]target, 0, len(b.subscribers))
	for id, ch := range b.subscribers {
		snapshot = append(snapshot, target{id: id, ch: ch})
	}
	b.mu.RUnlock()

	for _, t := range snapshot {
		select {
		case t.ch <- event:
		default:
			b.logger.WarnContext(ctx, "Observer buffer is full, event dropped",
				"observer_id", t.id,
				"event", event.Kind.String(),
				"order_id", int64(event.Order.ID()),
			)
		}
	}
}

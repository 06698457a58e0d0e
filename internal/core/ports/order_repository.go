// Package ports defines the contracts between the ordering core and its adapters.
// These interfaces establish dependency inversion between the application layer
// and infrastructure such as Postgres, Redis and the notification fanout.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its lines and assigns its ID.
	// The order must be valid and not yet persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the status, estimated ready time and update time of
	// an existing order, but only if the stored status still equals expected.
	//
	// Returns:
	//   - ObjectNotFoundError if the order does not exist
	//   - VersionIsInvalidError if the stored status differs from expected
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order with its lines.
	// Returns ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// NextCodeSequence atomically reserves the next per-day sequence number
	// used in order codes. The first call for a day returns 1.
	NextCodeSequence(ctx context.Context, day time.Time) (int, error)

	// PruneCodeSequences removes per-day counters of days before the day of
	// before and returns how many were removed.
	PruneCodeSequences(ctx context.Context, before time.Time) (int64, error)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs inside a unit of work and publishes
// order events only after the transaction has committed.
package commands

import (
	"context"
	"time"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// MenuRepoFactory provides access to menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderUoW manages transactions for lifecycle transitions.
	// The customer repository is needed to load the data broadcast with each event.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions that only touch customers.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW manages transactions across orders, customers and the menu.
	// Used by order intake, which upserts the customer, prices lines and stores
	// the order atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customers := uow.CustomerRepository()
	//   items, err := uow.MenuRepository().GetByIDs(ctx, ids)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		MenuRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current instant. Handlers take it as a dependency so that
// timestamps are deterministic under test.
type Clock func() time.Time

// SystemClock reports the current UTC time.
func SystemClock() time.Time {
	return time.Now().UTC()
}

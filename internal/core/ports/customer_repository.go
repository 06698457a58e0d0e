package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Upsert inserts the customer or, when the phone is already known, updates the
	// stored name, address and verification flag. It returns the stored customer.
	Upsert(ctx context.Context, c *customer.Customer) (*customer.Customer, error)

	// Get retrieves a customer by id. Returns ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// GetByPhone retrieves a customer by phone. Returns ObjectNotFoundError when absent.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
}

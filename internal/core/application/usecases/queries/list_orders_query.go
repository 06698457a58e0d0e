// Package queries contains read operations for the admin dashboard and the storefront.
// Query handlers read straight from the database and never change state.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders newest first, optionally only in some statuses.
//
// Example:
//
//	query, _ := NewListOrdersQuery(order.Placed, order.Accepted)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Println(o.Order.Code(), o.Customer.Name())
//	}
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. Without statuses every order is returned.
func NewListOrdersQuery(statuses ...order.Status) (ListOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		statuses: append([]order.Status(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter, empty for all orders.
func (q ListOrdersQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}

// OrderResponse is one order with its lines and customer.
type OrderResponse struct {
	Order    *order.Order
	Customer *customer.Customer
}

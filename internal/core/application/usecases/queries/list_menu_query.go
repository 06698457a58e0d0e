package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery retrieves the items customers can order.
type ListMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuQuery creates the query.
func NewListMenuQuery() ListMenuQuery {
	return ListMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

package queries

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetPaymentLinkQueryIsNotConstructed = errors.New(
	"GetPaymentLinkQuery must be created via NewGetPaymentLinkQuery constructor",
)

// GetPaymentLinkQuery retrieves the UPI link that pays one order.
type GetPaymentLinkQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetPaymentLinkQuery creates the query for orderID.
func NewGetPaymentLinkQuery(orderID order.ID) (GetPaymentLinkQuery, error) {
	if orderID <= 0 {
		return GetPaymentLinkQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	return GetPaymentLinkQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentLinkQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentLinkQueryIsNotConstructed)
}

// OrderID returns the order to pay.
func (q GetPaymentLinkQuery) OrderID() order.ID {
	return q.orderID
}

// PaymentLinkResponse is the payment link of an order.
type PaymentLinkResponse struct {
	OrderID order.ID
	Code    order.Code
	Amount  kernel.Money
	URL     string
}

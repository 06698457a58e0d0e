package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPaymentLinkQueryHandler builds the UPI link for an order's stored total.
type GetPaymentLinkQueryHandler struct {
	db    *gorm.DB
	links services.PaymentLinkBuilder
}

// NewGetPaymentLinkQueryHandler creates the handler.
func NewGetPaymentLinkQueryHandler(db *gorm.DB, links services.PaymentLinkBuilder) GetPaymentLinkQueryHandler {
	return GetPaymentLinkQueryHandler{db: db, links: links}
}

type paymentRow struct {
	Code        string
	TotalAmount decimal.Decimal
}

// Handle returns the link, or ErrObjectNotFound when the order does not exist.
func (h GetPaymentLinkQueryHandler) Handle(ctx context.Context, query GetPaymentLinkQuery) (PaymentLinkResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentLinkResponse{}, err
	}

	var row paymentRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("code, total_amount").
		Where("id = ?", int64(query.OrderID())).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PaymentLinkResponse{}, errs.NewObjectNotFoundError("order", int64(query.OrderID()))
	}
	if err != nil {
		return PaymentLinkResponse{}, errs.NewPersistenceFailureError("get order total", err)
	}

	amount, err := kernel.MoneyFromDecimal(row.TotalAmount)
	if err != nil {
		return PaymentLinkResponse{}, err
	}
	code := order.Code(row.Code)

	return PaymentLinkResponse{
		OrderID: query.OrderID(),
		Code:    code,
		Amount:  amount,
		URL:     h.links.Link(code, amount),
	}, nil
}

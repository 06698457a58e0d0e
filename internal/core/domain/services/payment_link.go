package services

import (
	"net/url"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// PaymentLinkBuilder formats UPI deep links that pay an order's total to the
// restaurant's virtual payment address.
//
// Example:
//
//	links, _ := services.NewPaymentLinkBuilder("akshayafoods@ybl", "Akshaya Foods")
//	fmt.Println(links.Link(o.Code(), o.Total()))
//	// upi://pay?pa=akshayafoods%40ybl&pn=Akshaya%20Foods&am=360.00&cu=INR&tn=Order%20AKF-20250314-0003
type PaymentLinkBuilder struct {
	payee     string
	payeeName string
}

// NewPaymentLinkBuilder creates a builder for payee (a UPI VPA) shown as payeeName.
func NewPaymentLinkBuilder(payee, payeeName string) (PaymentLinkBuilder, error) {
	payee = strings.TrimSpace(payee)
	if payee == "" {
		return PaymentLinkBuilder{}, errs.NewValueIsRequiredError("payee")
	}
	if !strings.Contains(payee, "@") {
		return PaymentLinkBuilder{}, errs.NewValueIsInvalidError("payee")
	}
	payeeName = strings.TrimSpace(payeeName)
	if payeeName == "" {
		return PaymentLinkBuilder{}, errs.NewValueIsRequiredError("payee name")
	}
	return PaymentLinkBuilder{payee: payee, payeeName: payeeName}, nil
}

// Link returns the upi://pay URL for amount, noted with the order code.
func (b PaymentLinkBuilder) Link(code order.Code, amount kernel.Money) string {
	params := []struct{ key, value string }{
		{"pa", b.payee},
		{"pn", b.payeeName},
		{"am", amount.String()},
		{"cu", "INR"},
		{"tn", "Order " + code.String()},
	}

	var sb strings.Builder
	sb.WriteString("upi://pay?")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		// UPI apps expect %20 rather than '+' for spaces.
		sb.WriteString(strings.ReplaceAll(url.QueryEscape(p.value), "+", "%20"))
	}
	return sb.String()
}

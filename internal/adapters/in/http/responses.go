package http

import "ordering/internal/adapters/views"

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acknowledges an action without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderEnvelope wraps a created or updated order.
type OrderEnvelope struct {
	Success bool        `json:"success"`
	Order   views.Order `json:"order"`
}

// CustomerEnvelope wraps a completed customer profile.
type CustomerEnvelope struct {
	Success  bool            `json:"success"`
	Customer *views.Customer `json:"customer"`
}

// PaymentLink is the UPI link that pays an order.
type PaymentLink struct {
	OrderID   int64  `json:"orderId"`
	OrderCode string `json:"orderCode"`
	Amount    string `json:"amount"`
	UPIURL    string `json:"upiUrl"`
}

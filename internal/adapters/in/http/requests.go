package http

// RequestOTPRequest is the body of POST /api/auth/request-otp.
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// CompleteProfileRequest is the body of POST /api/auth/complete-profile.
type CompleteProfileRequest struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CustomerContact identifies a customer who has no id yet.
type CustomerContact struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// OrderItemRequest is one requested line.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menuItemId"`
	Qty        int   `json:"qty"`
}

// CreateOrderRequest is the body of POST /api/orders. Either CustomerID or
// Customer must be present. TotalAmount, when sent, must match the menu prices.
type CreateOrderRequest struct {
	CustomerID  int64              `json:"customerId,omitempty"`
	Customer    *CustomerContact   `json:"customer,omitempty"`
	Mode        string             `json:"mode"`
	Items       []OrderItemRequest `json:"items"`
	TotalAmount *float64           `json:"totalAmount,omitempty"`
}

// UpdateStatusRequest is the body of PATCH /api/orders/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

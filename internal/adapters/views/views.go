// Package views holds the JSON representations shared by the HTTP API, the
// admin event stream and the message broker mirror.
package views

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// Customer is the public shape of a customer.
type Customer struct {
	ID            int64  `json:"id"`
	Phone         string `json:"phone"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	PhoneVerified bool   `json:"phoneVerified"`
}

// OrderItem is one order line. Price is the unit price captured at creation.
type OrderItem struct {
	MenuItemID int64  `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Qty        int    `json:"qty"`
}

// Order is the full order as observers and API clients see it.
type Order struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`
	Mode        string      `json:"mode"`
	Status      string      `json:"status"`
	TotalAmount string      `json:"totalAmount"`
	EstimatedAt *time.Time  `json:"estimatedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Customer    *Customer   `json:"customer,omitempty"`
	Items       []OrderItem `json:"items"`
}

// Event is one broadcast message.
type Event struct {
	Type       string    `json:"type"`
	Order      Order     `json:"order"`
	OccurredAt time.Time `json:"occurredAt"`
}

// MenuItem is a visible catalog entry.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Stats is the dashboard summary.
type Stats struct {
	Pending      int    `json:"pending"`
	Accepted     int    `json:"accepted"`
	Ready        int    `json:"ready"`
	Delivered    int    `json:"delivered"`
	TotalRevenue string `json:"totalRevenue"`
}

// NewCustomer converts c. A nil customer yields nil.
func NewCustomer(c *customer.Customer) *Customer {
	if c == nil {
		return nil
	}
	return &Customer{
		ID:            c.ID(),
		Phone:         c.Phone().String(),
		Name:          c.Name(),
		Address:       c.Address(),
		PhoneVerified: c.PhoneVerified(),
	}
}

// NewOrder converts o together with its customer.
func NewOrder(o *order.Order, c *customer.Customer) Order {
	lines := o.Lines()
	items := make([]OrderItem, len(lines))
	for i, l := range lines {
		items[i] = OrderItem{
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Price:      l.UnitPrice().String(),
			Qty:        l.Qty(),
		}
	}

	return Order{
		ID:          int64(o.ID()),
		Code:        o.Code().String(),
		Mode:        o.Mode().String(),
		Status:      o.Status().String(),
		TotalAmount: o.Total().String(),
		EstimatedAt: o.EstimatedAt(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Customer:    NewCustomer(c),
		Items:       items,
	}
}

// NewEvent converts a published order event.
func NewEvent(e ports.OrderEvent) Event {
	return Event{
		Type:       e.Kind.String(),
		Order:      NewOrder(e.Order, e.Customer),
		OccurredAt: e.OccurredAt,
	}
}

// NewMenuItem converts a catalog entry.
func NewMenuItem(i menu.Item) MenuItem {
	return MenuItem{
		ID:          i.ID,
		Name:        i.Name,
		Price:       i.Price.String(),
		Category:    i.Category,
		Description: i.Description,
		Image:       i.Image,
	}
}

// NewStats converts the derived statistics.
func NewStats(s services.OrderStats) Stats {
	return Stats{
		Pending:      s.Pending,
		Accepted:     s.Accepted,
		Ready:        s.Ready,
		Delivered:    s.Delivered,
		TotalRevenue: s.TotalRevenue.String(),
	}
}

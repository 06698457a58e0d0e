package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler loads orders with their customers and lines in two round trips.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates the handler.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderRow struct {
	ID            int64
	Code          string
	CustomerID    int64
	Mode          string
	Status        string
	TotalAmount   decimal.Decimal
	EstimatedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Phone         string
	Name          string
	Address       string
	PhoneVerified bool
}

type lineRow struct {
	OrderID    int64
	MenuItemID int64
	Name       string
	UnitPrice  decimal.Decimal
	Qty        int
}

// Handle returns orders sorted by creation time, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.id, o.code, o.customer_id, o.mode, o.status, o.total_amount,
			o.estimated_at, o.created_at, o.updated_at,
			c.phone, c.name, c.address, c.phone_verified`).
		Joins("JOIN customers AS c ON c.id = o.customer_id").
		Order("o.created_at DESC, o.id DESC")

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		tx = tx.Where("o.status IN ?", names)
	}

	var rows []orderRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("list orders", err)
	}
	if len(rows) == 0 {
		return []OrderResponse{}, nil
	}

	lines, err := h.loadLines(ctx, rows)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, convErr := toResponse(row, lines[row.ID])
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, resp)
	}
	return result, nil
}

func (h ListOrdersQueryHandler) loadLines(ctx context.Context, rows []orderRow) (map[int64][]order.Line, error) {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var lineRows []lineRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, menu_item_id, name, unit_price, qty
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, line_no
	`, ids).Scan(&lineRows).Error
	if err != nil {
		return nil, errs.NewPersistenceFailureError("list order lines", err)
	}

	lines := make(map[int64][]order.Line, len(rows))
	for _, lr := range lineRows {
		price, priceErr := kernel.MoneyFromDecimal(lr.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(lr.MenuItemID, lr.Name, price, lr.Qty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines[lr.OrderID] = append(lines[lr.OrderID], line)
	}
	return lines, nil
}

func toResponse(row orderRow, lines []order.Line) (OrderResponse, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderResponse{}, err
	}
	mode, err := order.ParseMode(row.Mode)
	if err != nil {
		return OrderResponse{}, err
	}
	total, err := kernel.MoneyFromDecimal(row.TotalAmount)
	if err != nil {
		return OrderResponse{}, err
	}

	var estimatedAt *time.Time
	if row.EstimatedAt != nil {
		at := row.EstimatedAt.UTC()
		estimatedAt = &at
	}

	o, err := order.RestoreOrder(order.ID(row.ID), order.Code(row.Code), row.CustomerID, mode, status, total,
		estimatedAt, row.CreatedAt.UTC(), row.UpdatedAt.UTC(), lines)
	if err != nil {
		return OrderResponse{}, err
	}

	c, err := customer.RestoreCustomer(row.CustomerID, kernel.Phone(row.Phone), row.Name, row.Address, row.PhoneVerified)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{Order: o, Customer: c}, nil
}

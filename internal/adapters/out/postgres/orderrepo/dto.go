// Package orderrepo persists order aggregates with GORM.
// An order is stored as one row in orders plus one row per line in order_lines.
// Daily order code counters live in order_code_sequences.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
// Status and mode are stored by name so the table stays readable from psql.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Code        string          `gorm:"size:32;not null;uniqueIndex"`
	CustomerID  int64           `gorm:"not null;index"`
	Mode        string          `gorm:"size:16;not null"`
	Status      string          `gorm:"size:24;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EstimatedAt *time.Time
	CreatedAt   time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one captured line. LineNo keeps the order in which lines were requested.
type OrderLineDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null;index"`
	LineNo     int             `gorm:"not null"`
	MenuItemID int64           `gorm:"not null"`
	Name       string          `gorm:"size:200;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Qty        int             `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// CodeSequenceDTO holds the last order code sequence handed out for a UTC day.
type CodeSequenceDTO struct {
	Day  string `gorm:"primaryKey;size:8"`
	Last int    `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (CodeSequenceDTO) TableName() string {
	return "order_code_sequences"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, l := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:    int64(o.ID()),
			LineNo:     i + 1,
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			UnitPrice:  l.UnitPrice().Decimal(),
			Qty:        l.Qty(),
		})
	}

	return OrderDTO{
		ID:          int64(o.ID()),
		Code:        o.Code().String(),
		CustomerID:  o.CustomerID(),
		Mode:        o.Mode().String(),
		Status:      o.Status().String(),
		TotalAmount: o.Total().Decimal(),
		EstimatedAt: o.EstimatedAt(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Lines:       lineDTOs,
	}
}

// ToDomain rebuilds an order from its rows. Lines must already be sorted by LineNo.
// It is exported for read models that load orders in bulk.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, err := kernel.MoneyFromDecimal(l.UnitPrice)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(l.MenuItemID, l.Name, price, l.Qty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	mode, err := order.ParseMode(dto.Mode)
	if err != nil {
		return nil, err
	}
	total, err := kernel.MoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var estimatedAt *time.Time
	if dto.EstimatedAt != nil {
		at := dto.EstimatedAt.UTC()
		estimatedAt = &at
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		order.Code(dto.Code),
		dto.CustomerID,
		mode,
		status,
		total,
		estimatedAt,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		lines,
	)
}

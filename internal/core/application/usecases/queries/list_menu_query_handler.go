package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenuQueryHandler reads visible menu items sorted by id.
type ListMenuQueryHandler struct {
	db *gorm.DB
}

// NewListMenuQueryHandler creates the handler.
func NewListMenuQueryHandler(db *gorm.DB) ListMenuQueryHandler {
	return ListMenuQueryHandler{db: db}
}

// Handle returns the visible menu.
func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price,
			COALESCE(category, ''), COALESCE(description, ''), COALESCE(image, '')
		FROM menu_items
		WHERE visible
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, errs.NewPersistenceFailureError("list menu", err)
	}
	defer rows.Close()

	items := make([]menu.Item, 0)
	for rows.Next() {
		var (
			item  menu.Item
			price decimal.Decimal
		)
		if err = rows.Scan(&item.ID, &item.Name, &price, &item.Category, &item.Description, &item.Image); err != nil {
			return nil, err
		}

		item.Price, err = kernel.MoneyFromDecimal(price)
		if err != nil {
			return nil, err
		}
		item.Visible = true
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceFailureError("list menu", err)
	}
	return items, nil
}

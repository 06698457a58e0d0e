// Package menurepo reads the menu_items catalog and seeds it with a default menu.
package menurepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is the row layout of the menu_items table.
type MenuItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:200;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Visible     bool            `gorm:"not null;index"`
	Category    string          `gorm:"size:100"`
	Description string          `gorm:"size:1000"`
	Image       string          `gorm:"size:1000"`
}

// TableName overrides GORM's default naming.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price.Decimal(),
		Visible:     item.Visible,
		Category:    item.Category,
		Description: item.Description,
		Image:       item.Image,
	}
}

// ToDomain converts a row into a menu item.
func ToDomain(dto MenuItemDTO) (menu.Item, error) {
	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}

	return menu.Item{
		ID:          dto.ID,
		Name:        dto.Name,
		Price:       price,
		Visible:     dto.Visible,
		Category:    dto.Category,
		Description: dto.Description,
		Image:       dto.Image,
	}, nil
}

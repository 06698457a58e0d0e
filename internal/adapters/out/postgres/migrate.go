package postgres

import (
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/menurepo"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.CodeSequenceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Package customerrepo persists customers with GORM. Phone is the natural key.
package customerrepo

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerDTO is the row layout of the customers table.
type CustomerDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Phone         string `gorm:"size:20;not null;uniqueIndex"`
	Name          string `gorm:"size:120;not null"`
	Address       string `gorm:"size:500;not null"`
	PhoneVerified bool   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            c.ID(),
		Phone:         c.Phone().String(),
		Name:          c.Name(),
		Address:       c.Address(),
		PhoneVerified: c.PhoneVerified(),
	}
}

// ToDomain rebuilds a customer from its row.
func ToDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, kernel.Phone(dto.Phone), dto.Name, dto.Address, dto.PhoneVerified)
}

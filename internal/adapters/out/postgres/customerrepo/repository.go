package customerrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Upsert inserts c or merges it into the row with the same phone.
// Name is overwritten, an empty address keeps the stored one and the verified
// flag never goes back from true to false.
func (r *GormCustomerRepository) Upsert(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	dto.ID = 0
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":           gorm.Expr("excluded.name"),
			"address":        gorm.Expr("COALESCE(NULLIF(excluded.address, ''), customers.address)"),
			"phone_verified": gorm.Expr("customers.phone_verified OR excluded.phone_verified"),
			"updated_at":     gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&dto).Error
	if err != nil {
		return nil, errs.NewPersistenceFailureError("upsert customer", err)
	}

	return r.GetByPhone(ctx, c.Phone())
}

// Get retrieves a customer by id.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	if err != nil {
		return nil, errs.NewPersistenceFailureError("get customer", err)
	}

	return ToDomain(dto)
}

// GetByPhone retrieves a customer by normalized phone.
func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("customer", phone.String())
	}
	if err != nil {
		return nil, errs.NewPersistenceFailureError("get customer by phone", err)
	}

	return ToDomain(dto)
}

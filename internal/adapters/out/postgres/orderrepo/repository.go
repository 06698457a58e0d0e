package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
// Pass a transaction handle to make every call part of that transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its lines, then assigns the generated id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return errs.NewValueIsInvalidError("order is already persisted")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureError("add order", err)
	}

	return aggregate.AssignID(order.ID(dto.ID))
}

// UpdateStatus writes status, estimated time and update time in one statement
// guarded by the expected stored status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", int64(aggregate.ID()), expected.String()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"estimated_at": aggregate.EstimatedAt(),
			"updated_at":   aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return errs.NewPersistenceFailureError("update order status", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", int64(aggregate.ID())).Count(&count).Error; err != nil {
		return errs.NewPersistenceFailureError("update order status", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", int64(aggregate.ID()))
	}
	return errs.NewVersionIsInvalidError("order status")
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		First(&dto, "id = ?", int64(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", int64(id))
	}
	if err != nil {
		return nil, errs.NewPersistenceFailureError("get order", err)
	}

	return ToDomain(dto)
}

// NextCodeSequence increments the counter row of the UTC day of day, creating it at 1.
// The row stays locked until the surrounding transaction ends, so two
// transactions never receive the same number and a rolled back one leaves no gap.
func (r *GormOrderRepository) NextCodeSequence(ctx context.Context, day time.Time) (int, error) {
	var last int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_code_sequences (day, last)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET last = order_code_sequences.last + 1
		RETURNING last
	`, order.CodeDay(day)).Scan(&last).Error
	if err != nil {
		return 0, errs.NewPersistenceFailureError("next order code sequence", err)
	}

	return last, nil
}

// PruneCodeSequences deletes the counters of days strictly before the UTC day of before.
// It returns the number of rows removed.
func (r *GormOrderRepository) PruneCodeSequences(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("day < ?", order.CodeDay(before)).Delete(&CodeSequenceDTO{})
	if result.Error != nil {
		return 0, errs.NewPersistenceFailureError("prune order code sequences", result.Error)
	}
	return result.RowsAffected, nil
}

package menurepo

import (
	"context"
	"strings"

	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetByIDs loads the requested items, keyed by id.
func (r *GormMenuRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]menu.Item, error) {
	items := make(map[int64]menu.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("get menu items", err)
	}

	for _, dto := range dtos {
		item, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID] = item
	}
	return items, nil
}

// ListVisible returns orderable items sorted by id.
func (r *GormMenuRepository) ListVisible(ctx context.Context) ([]menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("visible = ?", true).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("list menu items", err)
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Add stores new catalog entries. Items with a zero id get one assigned by the database.
func (r *GormMenuRepository) Add(ctx context.Context, items ...menu.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return errs.NewValueIsRequiredError("menu item name")
		}
		if err := item.Price.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewPersistenceFailureError("add menu items", err)
	}
	return nil
}

// Count returns the number of catalog rows, visible or not.
func (r *GormMenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&count).Error; err != nil {
		return 0, errs.NewPersistenceFailureError("count menu items", err)
	}
	return count, nil
}

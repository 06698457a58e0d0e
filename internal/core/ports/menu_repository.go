package ports

import (
	"context"

	"ordering/internal/core/domain/model/menu"
)

// MenuRepository reads the catalog. The ordering core never writes to it.
type MenuRepository interface {
	// GetByIDs returns the items found for ids, keyed by id. Missing ids are absent from the map.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]menu.Item, error)

	// ListVisible returns the items customers can order, sorted by id.
	ListVisible(ctx context.Context) ([]menu.Item, error)
}

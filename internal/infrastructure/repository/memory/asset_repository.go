package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

type AssetRepository struct {
	mu     sync.RWMutex
	items  map[id.U64ID]asset.Asset
	orders []id.U64ID
}

func NewAssetRepository(assets []asset.Asset) *AssetRepository {
	items := make(map[id.U64ID]asset.Asset, len(assets))
	orders := make([]id.U64ID, 0, len(assets))

	for _, a := range assets {
		if _, exists := items[a.ID]; exists {
			continue
		}
		items[a.ID] = a
		orders = append(orders, a.ID)
	}

	return &AssetRepository{
		items:  items,
		orders: orders,
	}
}

func (r *AssetRepository) Create(_ context.Context, item asset.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("%w: id=%s", asset.ErrAlreadyExists, item.ID)
	}
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *AssetRepository) GetByID(_ context.Context, assetID id.U64ID) (asset.Asset, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[assetID]
	if !ok {
		return asset.Asset{}, false, nil
	}

	return item, true, nil
}

func (r *AssetRepository) ListByIDs(_ context.Context, assetIDs []id.U64ID) ([]asset.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]asset.Asset, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		if item, ok := r.items[assetID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *AssetRepository) List(_ context.Context, limit int) ([]asset.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.orders)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]asset.Asset, 0, n)
	for _, assetID := range r.orders[:n] {
		out = append(out, r.items[assetID])
	}

	return out, nil
}

func (r *AssetRepository) Delete(_ context.Context, assetID id.U64ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[assetID]; !ok {
		return false, nil
	}
	delete(r.items, assetID)
	r.orders = slices.DeleteFunc(r.orders, func(v id.U64ID) bool { return v == assetID })

	return true, nil
}

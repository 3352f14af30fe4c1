package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	basecache "github.com/riskibarqy/assetid/internal/platform/cache"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

// cachedAsset also records misses so repeated lookups of unknown ids stay
// off the backing store until Create invalidates them.
type cachedAsset struct {
	value  asset.Asset
	exists bool
}

type AssetStore = basecache.Store[id.U64ID, cachedAsset]

func NewAssetStore(ttl time.Duration) *AssetStore {
	return basecache.NewStore[id.U64ID, cachedAsset](ttl)
}

type AssetRepository struct {
	next  asset.Repository
	cache *AssetStore
}

func NewAssetRepository(next asset.Repository, cache *AssetStore) *AssetRepository {
	return &AssetRepository{next: next, cache: cache}
}

func (r *AssetRepository) Create(ctx context.Context, item asset.Asset) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, item.ID)
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID id.U64ID) (asset.Asset, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, assetID, func(ctx context.Context) (cachedAsset, error) {
		item, exists, err := r.next.GetByID(ctx, assetID)
		if err != nil {
			return cachedAsset{}, err
		}
		return cachedAsset{value: item, exists: exists}, nil
	})
	if err != nil {
		return asset.Asset{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *AssetRepository) ListByIDs(ctx context.Context, assetIDs []id.U64ID) ([]asset.Asset, error) {
	found := make(map[id.U64ID]cachedAsset, len(assetIDs))
	missing := make([]id.U64ID, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		if cached, ok := r.cache.Get(ctx, assetID); ok {
			found[assetID] = cached
			continue
		}
		missing = append(missing, assetID)
	}

	if len(missing) > 0 {
		loaded, err := r.next.ListByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, item := range loaded {
			entry := cachedAsset{value: item, exists: true}
			found[item.ID] = entry
			r.cache.Set(ctx, item.ID, entry)
		}
	}

	out := make([]asset.Asset, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		if cached, ok := found[assetID]; ok && cached.exists {
			out = append(out, cached.value)
		}
	}

	return out, nil
}

// List always reads through; listings are not cached.
func (r *AssetRepository) List(ctx context.Context, limit int) ([]asset.Asset, error) {
	return r.next.List(ctx, limit)
}

func (r *AssetRepository) Delete(ctx context.Context, assetID id.U64ID) (bool, error) {
	deleted, err := r.next.Delete(ctx, assetID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, assetID)
	return deleted, nil
}

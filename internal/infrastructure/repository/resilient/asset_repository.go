package resilient

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/riskibarqy/assetid/internal/platform/resilience"
	"github.com/riskibarqy/assetid/internal/usecase"
)

// AssetRepository routes calls through a circuit breaker. While the breaker
// is open calls fail fast with usecase.ErrDependencyUnavailable.
type AssetRepository struct {
	next    asset.Repository
	breaker *resilience.CircuitBreaker
}

func NewAssetRepository(next asset.Repository, breaker *resilience.CircuitBreaker) *AssetRepository {
	return &AssetRepository{next: next, breaker: breaker}
}

// IsDependencyFailure reports whether err should count against the breaker.
func IsDependencyFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, asset.ErrAlreadyExists),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}

func (r *AssetRepository) Create(ctx context.Context, item asset.Asset) error {
	return r.do(ctx, func(ctx context.Context) error {
		return r.next.Create(ctx, item)
	})
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID id.U64ID) (asset.Asset, bool, error) {
	var (
		item   asset.Asset
		exists bool
	)
	err := r.do(ctx, func(ctx context.Context) error {
		var err error
		item, exists, err = r.next.GetByID(ctx, assetID)
		return err
	})
	return item, exists, err
}

func (r *AssetRepository) ListByIDs(ctx context.Context, assetIDs []id.U64ID) ([]asset.Asset, error) {
	var items []asset.Asset
	err := r.do(ctx, func(ctx context.Context) error {
		var err error
		items, err = r.next.ListByIDs(ctx, assetIDs)
		return err
	})
	return items, err
}

func (r *AssetRepository) List(ctx context.Context, limit int) ([]asset.Asset, error) {
	var items []asset.Asset
	err := r.do(ctx, func(ctx context.Context) error {
		var err error
		items, err = r.next.List(ctx, limit)
		return err
	})
	return items, err
}

func (r *AssetRepository) Delete(ctx context.Context, assetID id.U64ID) (bool, error) {
	var deleted bool
	err := r.do(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = r.next.Delete(ctx, assetID)
		return err
	})
	return deleted, err
}

func (r *AssetRepository) do(ctx context.Context, fn func(context.Context) error) error {
	err := r.breaker.Do(ctx, fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %w", usecase.ErrDependencyUnavailable, r.breaker.Name(), err)
	}
	return err
}

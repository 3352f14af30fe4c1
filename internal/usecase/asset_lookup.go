package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
)

const MaxLookupIDs = MaxListLimit

type LookupResult struct {
	Items   []asset.Asset
	Missing []id.U64ID
}

// Lookup resolves a batch of identifiers in one repository round trip.
// Duplicates collapse to their first occurrence and Items follow request
// order; identifiers with no stored asset are reported in Missing.
func (s *AssetService) Lookup(ctx context.Context, assetIDs []id.U64ID) (_ LookupResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.Lookup")
	defer func() { endWithError(span, err); span.End() }()

	if len(assetIDs) == 0 {
		return LookupResult{}, fmt.Errorf("%w: at least one id is required", ErrInvalidInput)
	}
	if len(assetIDs) > MaxLookupIDs {
		return LookupResult{}, fmt.Errorf("%w: at most %d ids per lookup", ErrInvalidInput, MaxLookupIDs)
	}

	unique := make([]id.U64ID, 0, len(assetIDs))
	seen := make(map[id.U64ID]struct{}, len(assetIDs))
	for i, assetID := range assetIDs {
		if assetID.IsNull() {
			return LookupResult{}, fmt.Errorf("%w: ids[%d]: %w", ErrInvalidInput, i, asset.ErrNullID)
		}
		if _, ok := seen[assetID]; ok {
			continue
		}
		seen[assetID] = struct{}{}
		unique = append(unique, assetID)
	}
	span.SetAttributes(attribute.Int("asset.lookup.count", len(unique)))

	found, err := s.repo.ListByIDs(ctx, unique)
	if err != nil {
		return LookupResult{}, fmt.Errorf("lookup assets: %w", err)
	}

	byID := make(map[id.U64ID]asset.Asset, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	res := LookupResult{Items: make([]asset.Asset, 0, len(found))}
	for _, assetID := range unique {
		item, ok := byID[assetID]
		if !ok {
			res.Missing = append(res.Missing, assetID)
			continue
		}
		res.Items = append(res.Items, item)
	}

	return res, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MaxImportItems       = 500
	defaultImportWorkers = 4
)

type ImportStatus string

const (
	ImportStatusCreated  ImportStatus = "created"
	ImportStatusConflict ImportStatus = "conflict"
	ImportStatusInvalid  ImportStatus = "invalid"
	ImportStatusFailed   ImportStatus = "failed"
)

// ImportAssetInput carries an optional identifier taken from an older
// system. A Null ID gets a freshly minted one.
type ImportAssetInput struct {
	ID   id.U64ID
	Name string
	Kind string
}

type ImportAssetResult struct {
	Index   int
	ID      id.U64ID
	Status  ImportStatus
	Message string
}

type ImportResult struct {
	Items        []ImportAssetResult
	CreatedCount int
	FailedCount  int
}

// Import stores a batch of assets on a bounded worker pool. A failing item
// does not stop the batch; its outcome is reported per index.
func (s *AssetService) Import(ctx context.Context, items []ImportAssetInput, workers int) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.Import")
	defer span.End()

	if len(items) == 0 {
		return ImportResult{}, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	if len(items) > MaxImportItems {
		return ImportResult{}, fmt.Errorf("%w: at most %d items per import", ErrInvalidInput, MaxImportItems)
	}
	if workers < 1 {
		workers = defaultImportWorkers
	}
	span.SetAttributes(attribute.Int("import.items", len(items)), attribute.Int("import.workers", workers))

	pool, err := ants.NewPool(workers)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]ImportAssetResult, len(items))
	var created atomic.Int32

	var wg sync.WaitGroup
	for i, input := range items {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = s.importOne(ctx, i, input)
			if results[i].Status == ImportStatusCreated {
				created.Add(1)
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return ImportResult{}, fmt.Errorf("submit import task to worker pool: %w", err)
		}
	}
	wg.Wait()

	out := ImportResult{
		Items:        results,
		CreatedCount: int(created.Load()),
	}
	out.FailedCount = len(items) - out.CreatedCount

	return out, nil
}

func (s *AssetService) importOne(ctx context.Context, index int, input ImportAssetInput) ImportAssetResult {
	assetID := input.ID
	if assetID.IsNull() {
		assetID = s.generator.NewID()
	}

	now := s.now().UTC()
	item := asset.Asset{
		ID:        assetID,
		Name:      strings.TrimSpace(input.Name),
		Kind:      strings.TrimSpace(input.Kind),
		CreatedAt: now,
		UpdatedAt: now,
	}

	row := ImportAssetResult{Index: index, ID: assetID, Status: ImportStatusCreated}
	if err := s.store(ctx, item); err != nil {
		row.Message = err.Error()
		switch {
		case errors.Is(err, ErrInvalidInput):
			row.Status = ImportStatusInvalid
		case errors.Is(err, ErrConflict):
			row.Status = ImportStatusConflict
		default:
			row.Status = ImportStatusFailed
		}
	}

	return row
}

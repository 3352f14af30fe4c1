package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type CreateAssetInput struct {
	Name string
	Kind string
}

type AssetService struct {
	repo      asset.Repository
	generator id.Generator
	now       func() time.Time
}

func NewAssetService(repo asset.Repository, generator id.Generator) *AssetService {
	if generator == nil {
		generator = id.NewRandomGenerator(nil)
	}
	return &AssetService{
		repo:      repo,
		generator: generator,
		now:       time.Now,
	}
}

// Create mints a fresh identifier for the asset and stores it.
func (s *AssetService) Create(ctx context.Context, input CreateAssetInput) (_ asset.Asset, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.Create")
	defer func() { endWithError(span, err); span.End() }()

	now := s.now().UTC()
	item := asset.Asset{
		ID:        s.generator.NewID(),
		Name:      strings.TrimSpace(input.Name),
		Kind:      strings.TrimSpace(input.Kind),
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(assetIDAttr(item.ID))

	if err := s.store(ctx, item); err != nil {
		return asset.Asset{}, err
	}

	return item, nil
}

// Get resolves an identifier token in either the canonical or the display
// form and returns the asset it names.
func (s *AssetService) Get(ctx context.Context, token string) (_ asset.Asset, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.Get")
	defer func() { endWithError(span, err); span.End() }()

	assetID, err := parseAssetID(token)
	if err != nil {
		return asset.Asset{}, err
	}
	span.SetAttributes(assetIDAttr(assetID))

	item, exists, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("get asset: %w", err)
	}
	if !exists {
		return asset.Asset{}, fmt.Errorf("%w: asset=%s", ErrNotFound, assetID)
	}

	return item, nil
}

func (s *AssetService) List(ctx context.Context, limit int) (_ []asset.Asset, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.List")
	defer func() { endWithError(span, err); span.End() }()

	items, err := s.repo.List(ctx, clampListLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	return items, nil
}

func (s *AssetService) Delete(ctx context.Context, token string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssetService.Delete")
	defer func() { endWithError(span, err); span.End() }()

	assetID, err := parseAssetID(token)
	if err != nil {
		return err
	}
	span.SetAttributes(assetIDAttr(assetID))

	deleted, err := s.repo.Delete(ctx, assetID)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: asset=%s", ErrNotFound, assetID)
	}

	return nil
}

func (s *AssetService) store(ctx context.Context, item asset.Asset) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, asset.ErrAlreadyExists) {
			return fmt.Errorf("%w: asset=%s", ErrConflict, item.ID)
		}
		return fmt.Errorf("create asset: %w", err)
	}

	return nil
}

// parseAssetID keeps id.ErrInvalidEncoding in the chain so callers can tell a
// malformed identifier apart from other bad input.
func parseAssetID(token string) (id.U64ID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return id.Null, fmt.Errorf("%w: asset id is required", ErrInvalidInput)
	}

	assetID, err := id.ParseDisplay(token)
	if err != nil {
		return id.Null, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if assetID.IsNull() {
		return id.Null, fmt.Errorf("%w: %w", ErrInvalidInput, asset.ErrNullID)
	}

	return assetID, nil
}

func clampListLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

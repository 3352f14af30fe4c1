package asset

import (
	"context"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

// Repository describes asset persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Asset) error
	GetByID(ctx context.Context, assetID id.U64ID) (Asset, bool, error)
	ListByIDs(ctx context.Context, assetIDs []id.U64ID) ([]Asset, error)
	List(ctx context.Context, limit int) ([]Asset, error)
	Delete(ctx context.Context, assetID id.U64ID) (bool, error)
}

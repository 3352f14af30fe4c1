package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestAssetRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(SeedAssets())

	item := asset.Asset{ID: id.FromRaw(0xbeef), Name: "clip.wav", Kind: "audio"}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create asset: %v", err)
	}
	if err := repo.Create(ctx, item); !errors.Is(err, asset.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on duplicate create, got %v", err)
	}

	got, exists, err := repo.GetByID(ctx, item.ID)
	if err != nil || !exists {
		t.Fatalf("get asset: exists=%v err=%v", exists, err)
	}
	if got.Name != "clip.wav" {
		t.Fatalf("unexpected asset name: %q", got.Name)
	}

	deleted, err := repo.Delete(ctx, item.ID)
	if err != nil || !deleted {
		t.Fatalf("delete asset: deleted=%v err=%v", deleted, err)
	}
	if _, exists, _ := repo.GetByID(ctx, item.ID); exists {
		t.Fatalf("expected asset to be gone after delete")
	}
	if deleted, _ := repo.Delete(ctx, item.ID); deleted {
		t.Fatalf("expected second delete to report false")
	}
}

func TestAssetRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(SeedAssets())

	items, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("unexpected asset count: %d", len(items))
	}
	if items[0].ID != SeedAssetLogo || items[2].ID != SeedAssetTexture {
		t.Fatalf("unexpected order: %v", items)
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list assets with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("unexpected limited count: %d", len(limited))
	}
}

func TestAssetRepository_ListByIDsSkipsUnknown(t *testing.T) {
	repo := NewAssetRepository(SeedAssets())

	items, err := repo.ListByIDs(context.Background(), []id.U64ID{SeedAssetTexture, id.FromRaw(1), SeedAssetLogo})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(items) != 2 || items[0].ID != SeedAssetTexture || items[1].ID != SeedAssetLogo {
		t.Fatalf("unexpected items: %v", items)
	}
}

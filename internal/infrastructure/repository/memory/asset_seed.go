package memory

import (
	"time"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

// Seed identifiers. The first two mirror values written by older clients as
// JSON integers (12345 and 75300), which decode as 0x12345 and 0x75300.
var (
	SeedAssetLogo    = id.FromRaw(0x12345)
	SeedAssetBanner  = id.FromRaw(0x75300)
	SeedAssetTexture = id.FromRaw(0xa12b345)
)

func SeedAssets() []asset.Asset {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []asset.Asset{
		{ID: SeedAssetLogo, Name: "logo.svg", Kind: "image", CreatedAt: created, UpdatedAt: created},
		{ID: SeedAssetBanner, Name: "banner.png", Kind: "image", CreatedAt: created, UpdatedAt: created},
		{ID: SeedAssetTexture, Name: "hero_diffuse.ktx2", Kind: "texture", CreatedAt: created, UpdatedAt: created},
	}
}

package httpapi

import (
	"encoding/json"
	"time"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/riskibarqy/assetid/internal/usecase"
)

type mintIDsRequest struct {
	Count int `json:"count" validate:"gte=0"`
}

type mintIDsDTO struct {
	IDs []id.U64ID `json:"ids"`
}

// normalizeIDsRequest keeps each element raw so the decoder can tell a JSON
// string from a JSON integer.
type normalizeIDsRequest struct {
	IDs []json.RawMessage `json:"ids" validate:"required,min=1"`
}

type normalizedIDDTO struct {
	Input   string   `json:"input"`
	ID      id.U64ID `json:"id"`
	Display string   `json:"display"`
}

type normalizeIDsDTO struct {
	Items []normalizedIDDTO `json:"items"`
}

type createAssetRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Kind string `json:"kind" validate:"required,max=64"`
}

type importAssetsRequest struct {
	Items []importAssetRecord `json:"items" validate:"required,min=1,max=500,dive"`
}

// importAssetRecord accepts legacy identifiers in any decodable shape.
type importAssetRecord struct {
	ID   *id.U64ID `json:"id"`
	Name string    `json:"name" validate:"required,max=200"`
	Kind string    `json:"kind" validate:"required,max=64"`
}

// lookupAssetsRequest decodes every element with the identifier JSON rules,
// so 12345 and "12345" name the same asset.
type lookupAssetsRequest struct {
	IDs []id.U64ID `json:"ids" validate:"required,min=1,max=500"`
}

type lookupAssetsDTO struct {
	Items   []assetDTO `json:"items"`
	Missing []id.U64ID `json:"missing"`
}

type importAssetResultDTO struct {
	Index   int      `json:"index"`
	ID      id.U64ID `json:"id"`
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
}

type importAssetsDTO struct {
	Items        []importAssetResultDTO `json:"items"`
	CreatedCount int                    `json:"created_count"`
	FailedCount  int                    `json:"failed_count"`
}

type assetDTO struct {
	ID        id.U64ID  `json:"id"`
	Display   string    `json:"display"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func assetToDTO(item asset.Asset) assetDTO {
	return assetDTO{
		ID:        item.ID,
		Display:   item.ID.String(),
		Name:      item.Name,
		Kind:      item.Kind,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func importResultToDTO(res usecase.ImportResult) importAssetsDTO {
	items := make([]importAssetResultDTO, 0, len(res.Items))
	for _, row := range res.Items {
		items = append(items, importAssetResultDTO{
			Index:   row.Index,
			ID:      row.ID,
			Status:  string(row.Status),
			Message: row.Message,
		})
	}

	return importAssetsDTO{
		Items:        items,
		CreatedCount: res.CreatedCount,
		FailedCount:  res.FailedCount,
	}
}

func lookupResultToDTO(res usecase.LookupResult) lookupAssetsDTO {
	items := make([]assetDTO, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, assetToDTO(item))
	}

	missing := res.Missing
	if missing == nil {
		missing = []id.U64ID{}
	}

	return lookupAssetsDTO{Items: items, Missing: missing}
}

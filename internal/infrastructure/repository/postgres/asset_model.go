package postgres

import (
	"time"

	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

// assetTableModel maps the assets table. id is stored as canonical hex TEXT;
// id.U64ID implements sql.Scanner and driver.Valuer for it.
type assetTableModel struct {
	ID        id.U64ID  `db:"id"`
	Name      string    `db:"name"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func assetToModel(item asset.Asset) assetTableModel {
	return assetTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Kind:      item.Kind,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (m assetTableModel) toDomain() asset.Asset {
	return asset.Asset{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      m.Kind,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

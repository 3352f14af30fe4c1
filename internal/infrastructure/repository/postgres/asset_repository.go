package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/assetid/internal/domain/asset"
	"github.com/riskibarqy/assetid/internal/platform/id"
)

const assetColumns = "id, name, kind, created_at, updated_at"

type AssetRepository struct {
	db *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, item asset.Asset) error {
	const query = `INSERT INTO assets (id, name, kind, created_at, updated_at)
VALUES (:id, :name, :kind, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, assetToModel(item)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id=%s", asset.ErrAlreadyExists, item.ID)
		}
		return fmt.Errorf("insert asset: %w", err)
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID id.U64ID) (asset.Asset, bool, error) {
	query := "SELECT " + assetColumns + " FROM assets WHERE id = $1"

	var row assetTableModel
	if err := r.db.GetContext(ctx, &row, query, assetID); err != nil {
		if isNotFound(err) {
			return asset.Asset{}, false, nil
		}
		return asset.Asset{}, false, fmt.Errorf("select asset by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *AssetRepository) ListByIDs(ctx context.Context, assetIDs []id.U64ID) ([]asset.Asset, error) {
	if len(assetIDs) == 0 {
		return []asset.Asset{}, nil
	}
	query := "SELECT " + assetColumns + " FROM assets WHERE id = ANY($1)"

	var rows []assetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(encodeIDs(assetIDs))); err != nil {
		return nil, fmt.Errorf("select assets by ids: %w", err)
	}

	return orderByIDs(rows, assetIDs), nil
}

func (r *AssetRepository) List(ctx context.Context, limit int) ([]asset.Asset, error) {
	query := "SELECT " + assetColumns + " FROM assets ORDER BY created_at, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []assetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select assets: %w", err)
	}

	out := make([]asset.Asset, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *AssetRepository) Delete(ctx context.Context, assetID id.U64ID) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM assets WHERE id = $1", assetID)
	if err != nil {
		return false, fmt.Errorf("delete asset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete asset rows affected: %w", err)
	}

	return affected > 0, nil
}

// orderByIDs returns rows in the order of assetIDs, skipping missing ones.
func orderByIDs(rows []assetTableModel, assetIDs []id.U64ID) []asset.Asset {
	byID := make(map[id.U64ID]assetTableModel, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	out := make([]asset.Asset, 0, len(rows))
	for _, assetID := range assetIDs {
		if row, ok := byID[assetID]; ok {
			out = append(out, row.toDomain())
		}
	}

	return out
}

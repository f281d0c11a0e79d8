package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hospitalinventory/m/domain"
)

const assetColumns = `id, resource_id, name, stock_count, deduction, date`

func (s *Store) ListAssets(ctx context.Context, resourceID int64) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	if err := s.db.SelectContext(ctx, &assets, s.q(`SELECT `+assetColumns+` FROM assets WHERE resource_id = ? ORDER BY id`), resourceID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return assets, nil
}

func (s *Store) GetAsset(ctx context.Context, id int64) (domain.Asset, error) {
	return getAsset(ctx, s.db, s.q(`SELECT `+assetColumns+` FROM assets WHERE id = ?`), id)
}

func getAsset(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (domain.Asset, error) {
	var asset domain.Asset
	err := sqlx.GetContext(ctx, q, &asset, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Asset{}, ErrNotFound
	}
	if err != nil {
		return domain.Asset{}, fmt.Errorf("db error: %w", err)
	}
	return asset, nil
}

// CreateAsset inserts an asset under an existing resource. A missing
// resource yields ErrNotFound.
func (s *Store) CreateAsset(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := getResource(ctx, tx, s.q(`SELECT id, name, section, image_path FROM resources WHERE id = ?`), asset.ResourceID); err != nil {
			return err
		}
		err := tx.QueryRowxContext(ctx, s.q(`INSERT INTO assets (resource_id, name, stock_count, deduction, date) VALUES (?, ?, ?, ?, ?) RETURNING id`),
			asset.ResourceID, asset.Name, asset.StockCount, asset.Deduction, asset.Date).Scan(&asset.ID)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Asset{}, err
	}
	return asset, nil
}

// UpdateAsset overwrites name, stock_count, deduction and date in full.
func (s *Store) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE assets SET name = ?, stock_count = ?, deduction = ?, date = ? WHERE id = ?`),
		asset.Name, asset.StockCount, asset.Deduction, asset.Date, asset.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

// DeleteAsset copies the live row into deleted_assets and removes it, both
// in one transaction. The archived copy is returned.
func (s *Store) DeleteAsset(ctx context.Context, id int64) (domain.DeletedAsset, error) {
	var archived domain.DeletedAsset
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		asset, err := getAsset(ctx, tx, s.q(`SELECT `+assetColumns+` FROM assets WHERE id = ?`), id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q(`INSERT INTO deleted_assets (`+assetColumns+`) VALUES (?, ?, ?, ?, ?, ?)`),
			asset.ID, asset.ResourceID, asset.Name, asset.StockCount, asset.Deduction, asset.Date); err != nil {
			return fmt.Errorf("archive asset: %w", err)
		}
		res, err := tx.ExecContext(ctx, s.q(`DELETE FROM assets WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete asset: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		archived = domain.DeletedAsset(asset)
		return nil
	})
	if err != nil {
		return domain.DeletedAsset{}, err
	}
	return archived, nil
}

func (s *Store) ListDeletedAssets(ctx context.Context) ([]domain.DeletedAsset, error) {
	deleted := []domain.DeletedAsset{}
	if err := s.db.SelectContext(ctx, &deleted, `SELECT `+assetColumns+` FROM deleted_assets ORDER BY id DESC`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return deleted, nil
}

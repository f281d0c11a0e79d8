package store

import (
	"context"
	"fmt"

	"hospitalinventory/m/domain"
)

func (s *Store) ReportTypes(ctx context.Context) ([]domain.ReportType, error) {
	types := []domain.ReportType{}
	if err := s.db.SelectContext(ctx, &types, `SELECT DISTINCT name FROM resources ORDER BY name`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return types, nil
}

// ReportRows returns the assets of one resource dated inside the inclusive
// range, optionally limited to one asset name.
func (s *Store) ReportRows(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	query := `SELECT a.name, a.stock_count, a.deduction, a.date, r.section
            FROM assets a
            JOIN resources r ON a.resource_id = r.id
            WHERE r.name = ? AND a.date BETWEEN ? AND ?`
	args := []any{filter.ResourceName, filter.Start, filter.End}
	if filter.AssetName != "" {
		query += ` AND a.name = ?`
		args = append(args, filter.AssetName)
	}
	query += ` ORDER BY a.date ASC, a.id ASC`

	rows := []domain.ReportRow{}
	if err := s.db.SelectContext(ctx, &rows, s.q(query), args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rows, nil
}

// SearchAssets returns every asset carrying exactly this name.
func (s *Store) SearchAssets(ctx context.Context, assetName string) ([]domain.AssetSearchRow, error) {
	rows := []domain.AssetSearchRow{}
	err := s.db.SelectContext(ctx, &rows, s.q(`SELECT a.name AS asset_name, r.name AS resource_name, a.stock_count, a.deduction, a.date, r.section
            FROM assets a
            JOIN resources r ON a.resource_id = r.id
            WHERE a.name = ?
            ORDER BY a.date ASC, a.id ASC`), assetName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rows, nil
}

package store

import (
	"context"
	"fmt"

	"hospitalinventory/m/domain"
)

func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM assets`)
}

func (s *Store) CountResources(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM resources`)
}

func (s *Store) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// AssetTimeline sums stock_count - deduction per day, oldest first.
func (s *Store) AssetTimeline(ctx context.Context) ([]domain.TimelinePoint, error) {
	points := []domain.TimelinePoint{}
	err := s.db.SelectContext(ctx, &points, `SELECT date, CAST(SUM(stock_count - deduction) AS BIGINT) AS total_assets
            FROM assets
            GROUP BY date
            ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return points, nil
}

// LowStock returns the lowest-stocked assets under the threshold.
func (s *Store) LowStock(ctx context.Context) ([]domain.LowStockItem, error) {
	items := []domain.LowStockItem{}
	err := s.db.SelectContext(ctx, &items, s.q(`SELECT a.id, r.name AS resource_name, a.name AS asset_name, a.stock_count, a.date AS last_updated, r.section
            FROM assets a
            JOIN resources r ON a.resource_id = r.id
            WHERE a.stock_count < ?
            ORDER BY a.stock_count ASC, a.id ASC
            LIMIT ?`), domain.LowStockThreshold, domain.LowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

// RecentChanges returns the most recently dated assets with their resource.
func (s *Store) RecentChanges(ctx context.Context) ([]domain.AssetChange, error) {
	changes := []domain.AssetChange{}
	err := s.db.SelectContext(ctx, &changes, s.q(`SELECT a.id, a.name AS asset_name, a.deduction, a.date, r.name AS resource_name
            FROM assets a
            JOIN resources r ON a.resource_id = r.id
            ORDER BY a.date DESC, a.id DESC
            LIMIT ?`), domain.RecentUpdateLimit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return changes, nil
}

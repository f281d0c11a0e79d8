package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hospitalinventory/m/domain"
)

func (s *Store) ListResources(ctx context.Context) ([]domain.Resource, error) {
	resources := []domain.Resource{}
	if err := s.db.SelectContext(ctx, &resources, `SELECT id, name, section, image_path FROM resources ORDER BY id`); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return resources, nil
}

func (s *Store) GetResource(ctx context.Context, id int64) (domain.Resource, error) {
	return getResource(ctx, s.db, s.q(`SELECT id, name, section, image_path FROM resources WHERE id = ?`), id)
}

func getResource(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (domain.Resource, error) {
	var resource domain.Resource
	err := sqlx.GetContext(ctx, q, &resource, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Resource{}, ErrNotFound
	}
	if err != nil {
		return domain.Resource{}, fmt.Errorf("db error: %w", err)
	}
	return resource, nil
}

func (s *Store) CreateResource(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	err := s.db.QueryRowxContext(ctx, s.q(`INSERT INTO resources (name, section, image_path) VALUES (?, ?, ?) RETURNING id`),
		resource.Name, resource.Section, resource.ImagePath).Scan(&resource.ID)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("db error: %w", err)
	}
	return resource, nil
}

// UpdateResource overwrites name, section and image_path.
func (s *Store) UpdateResource(ctx context.Context, resource domain.Resource) error {
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE resources SET name = ?, section = ?, image_path = ? WHERE id = ?`),
		resource.Name, resource.Section, resource.ImagePath, resource.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

// DeleteResource archives every asset of the resource, removes those assets
// and then the resource itself in one transaction. The removed resource is
// returned so the caller can drop its image.
func (s *Store) DeleteResource(ctx context.Context, id int64) (domain.Resource, error) {
	var resource domain.Resource
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		resource, err = getResource(ctx, tx, s.q(`SELECT id, name, section, image_path FROM resources WHERE id = ?`), id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q(`INSERT INTO deleted_assets (id, resource_id, name, stock_count, deduction, date)
            SELECT id, resource_id, name, stock_count, deduction, date FROM assets WHERE resource_id = ?`), id); err != nil {
			return fmt.Errorf("archive assets: %w", err)
		}
		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM assets WHERE resource_id = ?`), id); err != nil {
			return fmt.Errorf("delete assets: %w", err)
		}
		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM resources WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete resource: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Resource{}, err
	}
	return resource, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

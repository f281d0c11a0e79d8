package store

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/database"
	"hospitalinventory/m/internal/migrations"
)

func newTestStore(t *testing.T) (*Store, *sqlx.DB) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(uuid.NewString(), "-", "") + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Run(context.Background(), db))
	return New(db), db
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seedResource(t *testing.T, s *Store, name, section string) domain.Resource {
	t.Helper()
	r, err := s.CreateResource(context.Background(), domain.Resource{Name: name, Section: section, ImagePath: strings.ToLower(name) + ".png"})
	require.NoError(t, err)
	return r
}

func seedAsset(t *testing.T, s *Store, resourceID int64, name string, stock, deduction int64, date string) domain.Asset {
	t.Helper()
	a, err := s.CreateAsset(context.Background(), domain.Asset{
		ResourceID: resourceID,
		Name:       name,
		StockCount: stock,
		Deduction:  deduction,
		Date:       mustDate(t, date),
	})
	require.NoError(t, err)
	return a
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM `+table))
	return n
}

package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"hospitalinventory/m/internal/database"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var files embed.FS

// Run applies every pending migration for the database's dialect.
func Run(ctx context.Context, db *sqlx.DB) error {
	dialect, dir := goose.DialectSQLite3, "sql/sqlite"
	if db.DriverName() == database.DriverPostgres {
		dialect, dir = goose.DialectPostgres, "sql/postgres"
	}

	fsys, err := fs.Sub(files, dir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

package database

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Driver names registered by the imported database/sql drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DriverFor picks the driver from the DSN scheme. Anything that is not a
// Postgres URL is opened with SQLite.
func DriverFor(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Connect opens the database behind dsn and verifies the connection.
func Connect(dsn string) (*sqlx.DB, error) {
	driver := DriverFor(dsn)
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

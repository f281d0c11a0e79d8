package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	require.Equal(t, DriverPostgres, DriverFor("postgres://u:p@localhost:5432/db"))
	require.Equal(t, DriverPostgres, DriverFor("PostgreSQL://localhost/db"))
	require.Equal(t, DriverSQLite, DriverFor("file:inventory.db"))
	require.Equal(t, DriverSQLite, DriverFor(":memory:"))
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db, err := Connect("file:connect_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, DriverSQLite, db.DriverName())
	var one int
	require.NoError(t, db.Get(&one, `SELECT 1`))
	require.Equal(t, 1, one)
}

package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/trip-metrics-backend-go/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := database.Open(database.Config{Path: database.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, database.NewMigrationManager(conn, database.Migrations).RunMigrations())
	return conn
}

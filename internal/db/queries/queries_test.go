package queries

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ortobahn/ortobahn/internal/server"
)

// openTestDB opens a throwaway database with the application schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ortobahn.db")
	database, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(server.Schema)
	require.NoError(t, err)

	return database
}

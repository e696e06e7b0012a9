package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))

	// migrations are idempotent
	require.NoError(t, Migrate(db))

	for _, table := range []string{"sync_operations", "case_list_cache", "case_detail_cache"} {
		var name string
		err = db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1", table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}

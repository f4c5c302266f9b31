package testutil

import (
	"path/filepath"
	"testing"

	"github.com/cxxxr/chainsort/lib/database"
	"github.com/stretchr/testify/require"
)

func CreateTestingDatabaseFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "chainsort.sqlite3")
}

// OpenDatabase creates the tables in a new temporary file and connects to it.
// The connection is committed and closed when the test ends.
func OpenDatabase(t *testing.T) *database.Database {
	db := database.New(CreateTestingDatabaseFile(t))
	require.Nil(t, db.InitTables())
	require.Nil(t, db.Connect())
	t.Cleanup(func() {
		require.Nil(t, db.Close())
	})
	return db
}

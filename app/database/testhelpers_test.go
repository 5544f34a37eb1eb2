package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, _, err = RunMigrations(db)
	require.NoError(t, err)

	return db
}

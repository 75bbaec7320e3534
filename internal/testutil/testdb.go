package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/GeekPO11/dlulu/internal/db"
)

// NewTestDB opens a migrated database in a per-test temp directory and
// closes it when the test completes. A real file rather than ":memory:"
// so tests cover the same WAL-mode path the CLI runs on.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "dlulu.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

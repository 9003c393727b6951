package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB opens a throwaway sqlite database in a temp directory,
// runs the migrations and returns the connection. The file is removed
// with the temp dir when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leavekit_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Errorf("close test database: %v", err)
		}
	})

	if err := Migrate(context.Background(), conn); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return conn
}

package db

import (
	"context"
	"database/sql"
	"testing"
)

// NewTestDB returns an empty in-memory tracker database that is closed when
// the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

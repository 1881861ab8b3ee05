package testutil

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/BloggingApp/user-service/internal/model"
	"github.com/BloggingApp/user-service/internal/repository/sqlite"
)

var dbNameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// OpenInMemoryDB opens an in-memory SQLite database private to the calling test.
// The database is closed through t.Cleanup.
func OpenInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	// Shared cache keeps every pooled connection on the same in-memory database.
	d, err := sqlite.Open("file:" + dbNameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeedUsers inserts the given users as-is.
func SeedUsers(t *testing.T, d *sql.DB, users ...model.User) {
	t.Helper()
	for _, u := range users {
		if _, err := d.ExecContext(context.Background(), `INSERT INTO users (id, name, twitter) VALUES (?, ?, ?)`, u.ID, u.Name, u.Twitter); err != nil {
			t.Fatalf("seed user %d: %v", u.ID, err)
		}
	}
}

// CountUsers returns the number of rows currently in the users table.
func CountUsers(t *testing.T, d *sql.DB) int {
	t.Helper()
	var n int
	if err := d.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		t.Fatalf("count users: %v", err)
	}
	return n
}

package sqlite

import (
	"context"
	"database/sql"
	_ "embed"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Open opens (or creates) a SQLite database and makes sure the users table exists.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "users.db"
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(schema); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

type pinger struct {
	db *sql.DB
}

// Pinger adapts db to the context-first Ping used by the health check.
func Pinger(db *sql.DB) interface{ Ping(ctx context.Context) error } {
	return pinger{db: db}
}

func (p pinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

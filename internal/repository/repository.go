package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/BloggingApp/user-service/internal/model"
	"github.com/BloggingApp/user-service/internal/repository/postgres"
	"github.com/BloggingApp/user-service/internal/repository/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User reads user records. FindByID returns (nil, nil) when no row matches.
type User interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// Pinger checks that the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	User
	DB Pinger
}

func NewPostgres(db *pgxpool.Pool, queryTimeout time.Duration) *Repository {
	return &Repository{
		User: postgres.New(db, queryTimeout).User,
		DB:   db,
	}
}

func NewSQLite(db *sql.DB, queryTimeout time.Duration) *Repository {
	return &Repository{
		User: sqlite.New(db, queryTimeout).User,
		DB:   sqlite.Pinger(db),
	}
}

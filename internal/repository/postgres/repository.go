package postgres

import (
	"context"
	"time"

	"github.com/BloggingApp/user-service/internal/model"
	"github.com/jackc/pgx/v5"
)

const defaultQueryTimeout = 3 * time.Second

// querier is the subset of *pgxpool.Pool the repositories use.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type User interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

type PostgresRepository struct {
	User
}

func New(db querier, queryTimeout time.Duration) *PostgresRepository {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &PostgresRepository{
		User: newUserRepo(db, queryTimeout),
	}
}

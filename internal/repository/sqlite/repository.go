package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/BloggingApp/user-service/internal/model"
)

const defaultQueryTimeout = 3 * time.Second

type User interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

type SQLiteRepository struct {
	User
}

func New(db *sql.DB, queryTimeout time.Duration) *SQLiteRepository {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &SQLiteRepository{
		User: newUserRepo(db, queryTimeout),
	}
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/BloggingApp/user-service/internal/model"
)

const (
	findAllUsersQuery = `SELECT id, name, twitter FROM users ORDER BY id`
	findUserByIDQuery = `SELECT id, name, twitter FROM users WHERE id = ?`
)

type userRepo struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func newUserRepo(db *sql.DB, queryTimeout time.Duration) User {
	return &userRepo{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

func (r *userRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, findAllUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Twitter); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var u model.User
	err := r.db.QueryRowContext(ctx, findUserByIDQuery, id).Scan(&u.ID, &u.Name, &u.Twitter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

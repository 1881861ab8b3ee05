package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/user-service/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	findAllUsersQuery = "SELECT u.id, u.name, u.twitter FROM users u ORDER BY u.id"
	findUserByIDQuery = "SELECT u.id, u.name, u.twitter FROM users u WHERE u.id = $1"
)

type userRepo struct {
	db           querier
	queryTimeout time.Duration
}

func newUserRepo(db querier, queryTimeout time.Duration) User {
	return &userRepo{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

func (r *userRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, findAllUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Twitter,
		); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var user model.User
	if err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&user.ID,
		&user.Name,
		&user.Twitter,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

package service

import (
	"context"

	"github.com/BloggingApp/user-service/internal/model"
	"github.com/BloggingApp/user-service/internal/repository"
	"go.uber.org/zap"
)

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userService) FindAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find users: %s", err.Error())
		return nil, ErrInternal
	}

	if users == nil {
		users = []*model.User{}
	}

	return users, nil
}

func (s *userService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

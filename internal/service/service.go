package service

import (
	"context"

	"github.com/BloggingApp/user-service/internal/config"
	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/BloggingApp/user-service/internal/model"
	"github.com/BloggingApp/user-service/internal/repository"
	"go.uber.org/zap"
)

type User interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	// FindByID returns (nil, nil) when there is no such user.
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// Page loads the data behind the HTML views by calling the users API at origin.
type Page interface {
	Home(ctx context.Context, origin string) (*dto.HomePage, error)
	// Profile returns ErrUserNotFound when the API answers with a null user.
	Profile(ctx context.Context, origin string, id string) (*dto.UserPage, error)
}

type Health interface {
	Check(ctx context.Context) error
}

type Service struct {
	User
	Page
	Health
}

func New(logger *zap.Logger, repo *repository.Repository, cfg config.AppConfig) *Service {
	return &Service{
		User:   newUserService(logger, repo),
		Page:   newPageService(logger, cfg),
		Health: newHealthService(logger, repo),
	}
}

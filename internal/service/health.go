package service

import (
	"context"
	"time"

	"github.com/BloggingApp/user-service/internal/repository"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newHealthService(logger *zap.Logger, repo *repository.Repository) Health {
	return &healthService{
		logger: logger,
		repo:   repo,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.repo.DB.Ping(ctx); err != nil {
		s.logger.Sugar().Errorf("failed to ping database: %s", err.Error())
		return ErrInternal
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/BloggingApp/user-service/internal/config"
	"github.com/BloggingApp/user-service/internal/dto"
	"github.com/BloggingApp/user-service/internal/requestid"
	"go.uber.org/zap"
)

const (
	usersEndpoint = "/api/users"
	userEndpoint  = "/api/users/user"
)

type pageService struct {
	logger     *zap.Logger
	title      string
	httpClient *http.Client
}

func newPageService(logger *zap.Logger, cfg config.AppConfig) Page {
	return &pageService{
		logger: logger,
		title:  cfg.Title,
		httpClient: &http.Client{
			Timeout: cfg.APITimeout,
		},
	}
}

func (s *pageService) Home(ctx context.Context, origin string) (*dto.HomePage, error) {
	var resp dto.GetUsersResponse
	if err := s.getJSON(ctx, strings.TrimSuffix(origin, "/")+usersEndpoint, &resp); err != nil {
		return nil, err
	}

	return &dto.HomePage{
		Title: s.title,
		Users: resp.Users,
	}, nil
}

func (s *pageService) Profile(ctx context.Context, origin string, id string) (*dto.UserPage, error) {
	endpoint := strings.TrimSuffix(origin, "/") + userEndpoint + "?id=" + url.QueryEscape(id)

	var resp dto.GetUserResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.User == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserPage{
		Title: fmt.Sprintf("%s / %s", s.title, resp.User.Name),
		User:  resp.User,
	}, nil
}

func (s *pageService) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create request to users api: %s", err.Error())
		return ErrInternal
	}

	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to send request to users api(%s): %s", endpoint, err.Error())
		return ErrUsersAPI
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from users api(%s): %s", endpoint, err.Error())
		return ErrUsersAPI
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]any
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from users api: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from users api endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return ErrUsersAPI
	}

	if err := json.Unmarshal(body, out); err != nil {
		s.logger.Sugar().Errorf("failed to decode response body from users api(%s): %s", endpoint, err.Error())
		return ErrUsersAPI
	}

	return nil
}

package dto

import "github.com/BloggingApp/user-service/internal/model"

type GetUsersResponse struct {
	Users []*model.User `json:"users"`
}

// GetUserResponse carries a nil User when no row matched.
type GetUserResponse struct {
	User *model.User `json:"user"`
}

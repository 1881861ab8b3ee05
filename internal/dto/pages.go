package dto

import "github.com/BloggingApp/user-service/internal/model"

type HomePage struct {
	Title string
	Users []*model.User
}

type UserPage struct {
	Title string
	User  *model.User
}

type ErrorPage struct {
	Title   string
	Message string
}

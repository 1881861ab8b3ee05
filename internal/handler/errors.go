package handler

import "errors"

var (
	errPageUnavailable = errors.New("users could not be loaded, please try again later")
)

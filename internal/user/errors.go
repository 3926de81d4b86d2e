package user

import "errors"

var (
	ErrUserNotFound = errors.New("user: not found")
	ErrEmailExists  = errors.New("user: email already exists")
	ErrInvalidRole  = errors.New("user: invalid role")
)

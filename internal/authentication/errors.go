package authentication

import "errors"

var (
	ErrInvalidCredentials  = errors.New("authentication: invalid credentials")
	ErrEmailExists         = errors.New("authentication: email already registered")
	ErrUserNotFound        = errors.New("authentication: user not found")
	ErrRoleNotAllowed      = errors.New("authentication: role cannot be self-assigned")
	ErrInvalidRole         = errors.New("authentication: invalid role")
	ErrInvalidRefreshToken = errors.New("authentication: invalid refresh token")
	ErrRefreshTokenMissing = errors.New("authentication: refresh token missing")
	ErrInvalidEmail        = errors.New("authentication: invalid email")
	ErrRequiredFields      = errors.New("authentication: required fields missing")
	ErrWeakPassword        = errors.New("authentication: password is empty or too long")
	ErrUnauthenticated     = errors.New("authentication: no identity in scope")
)

package http

import (
	"errors"
	"net/http"

	"inventory-srv/internal/authentication"
	pkgErrors "inventory-srv/pkg/errors"
)

var (
	errRegisterFieldsRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "All fields are required")
	errLoginFieldsRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Email and password required")
	errInvalidEmail           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid email")
	errInvalidRole            = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid role")
	errWeakPassword           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Password must be between 1 and 72 bytes")
	errInvalidCredentials     = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errRefreshTokenMissing    = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Refresh token not found")
	errInvalidRefreshToken    = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	errUnauthenticated        = pkgErrors.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	errRoleNotAllowed         = pkgErrors.NewHTTPError(http.StatusForbidden, "Role cannot be self-assigned")
	errUserNotFound           = pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	errUserExists             = pkgErrors.NewHTTPError(http.StatusConflict, "User already exists")
	errInvalidPagination      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, authentication.ErrRequiredFields):
		return errRegisterFieldsRequired
	case errors.Is(err, authentication.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, authentication.ErrInvalidRole):
		return errInvalidRole
	case errors.Is(err, authentication.ErrWeakPassword):
		return errWeakPassword
	case errors.Is(err, authentication.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, authentication.ErrRefreshTokenMissing):
		return errRefreshTokenMissing
	case errors.Is(err, authentication.ErrInvalidRefreshToken):
		return errInvalidRefreshToken
	case errors.Is(err, authentication.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, authentication.ErrRoleNotAllowed):
		return errRoleNotAllowed
	case errors.Is(err, authentication.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, authentication.ErrEmailExists):
		return errUserExists
	default:
		panic(err)
	}
}

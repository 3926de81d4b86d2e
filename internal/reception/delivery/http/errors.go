package http

import (
	"errors"
	"net/http"

	"inventory-srv/internal/reception"
	pkgErrors "inventory-srv/pkg/errors"
)

var (
	errRequiredFields    = pkgErrors.NewHTTPError(http.StatusBadRequest, "All required fields must be provided")
	errInvalidQuantity   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Quantity and minimum threshold must be greater than 0")
	errInvalidID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errInvalidDate       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	errInvalidBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidPagination = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	errUnauthenticated   = pkgErrors.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	errNotFound          = pkgErrors.NewHTTPError(http.StatusNotFound, "Equipment reception not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reception.ErrRequiredFields):
		return errRequiredFields
	case errors.Is(err, reception.ErrInvalidQuantity):
		return errInvalidQuantity
	case errors.Is(err, reception.ErrReceptionNotFound):
		return errNotFound
	default:
		panic(err)
	}
}

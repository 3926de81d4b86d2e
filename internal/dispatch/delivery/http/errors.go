package http

import (
	"errors"
	"net/http"

	"inventory-srv/internal/dispatch"
	pkgErrors "inventory-srv/pkg/errors"
)

var (
	errRequiredFields    = pkgErrors.NewHTTPError(http.StatusBadRequest, "All required fields must be provided")
	errInvalidQuantity   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
	errInvalidManager    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Warehouse manager must be a user with MANAGER role")
	errDateRangeRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Start date and end date are required")
	errInvalidDateRange  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Start date must not be after end date")
	errInvalidID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid id")
	errInvalidDate       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	errInvalidBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidPagination = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid pagination parameters")
	errUnauthenticated   = pkgErrors.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	errNotFound          = pkgErrors.NewHTTPError(http.StatusNotFound, "Equipment delivery not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dispatch.ErrRequiredFields):
		return errRequiredFields
	case errors.Is(err, dispatch.ErrInvalidQuantity):
		return errInvalidQuantity
	case errors.Is(err, dispatch.ErrInvalidManager):
		return errInvalidManager
	case errors.Is(err, dispatch.ErrDateRangeIncomplete):
		return errDateRangeRequired
	case errors.Is(err, dispatch.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, dispatch.ErrDeliveryNotFound):
		return errNotFound
	default:
		panic(err)
	}
}

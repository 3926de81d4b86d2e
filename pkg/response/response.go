package response

import (
	"errors"
	"net/http"

	pkgErrors "inventory-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: successErrorCode,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Created writes a 201 response wrapping data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		ErrorCode: successErrorCode,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error body. Errors that are not *errors.HTTPError are
// rendered as a generic 500 so internal detail never reaches the client.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.StatusCode(),
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// Unauthorized writes a 401 with message, or the default message when empty.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = MessageUnauthorized
	}
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   message,
	})
}

// Forbidden writes a 403 with message, or the default message when empty.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = MessageForbidden
	}
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   message,
	})
}

// PanicError writes the response for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

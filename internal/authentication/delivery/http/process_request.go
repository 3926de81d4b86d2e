package http

import (
	"inventory-srv/internal/model"
	"inventory-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRegisterRequest(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errRegisterFieldsRequired
	}
	return req, nil
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errLoginFieldsRequired
	}
	return req, nil
}

func (h *handler) processRefreshRequest(c *gin.Context) (string, error) {
	token, err := c.Cookie(h.refreshCookieName())
	if err != nil || token == "" {
		return "", errRefreshTokenMissing
	}
	return token, nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}

func (h *handler) processListUsersRequest(c *gin.Context) (listUsersReq, model.Scope, error) {
	var req listUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, errInvalidPagination
	}

	sc, err := h.processScope(c)
	if err != nil {
		return req, model.Scope{}, err
	}
	return req, sc, nil
}

package http

import (
	"inventory-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Register
// @Description Create an account and receive an access token. Tokens are also set as cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Register request"
// @Success 201 {object} authResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Register: processRegisterRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Register: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setTokenCookies(c, o.Tokens)
	h.l.Infof(ctx, "authentication.delivery.http.Register: user registered id=%s", o.User.ID)
	response.Created(c, h.newAuthResp(o))
}

// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Login request"
// @Success 200 {object} authResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setTokenCookies(c, o.Tokens)
	response.OK(c, h.newAuthResp(o))
}

// @Summary Logout
// @Description Clear token cookies. Issued tokens stay valid until they expire.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.clearTokenCookies(c)
	response.OK(c, nil)
}

// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new pair.
// @Tags Auth
// @Produce json
// @Success 200 {object} refreshResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/auth/refresh [post]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := h.processRefreshRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Refresh(ctx, token)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Refresh: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setTokenCookies(c, o.Tokens)
	response.OK(c, h.newRefreshResp(o))
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/auth/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.CurrentUser(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Me: usecase CurrentUser failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// @Summary List users
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} listUsersResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/auth/admin/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListUsersRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.ListUsers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "authentication.delivery.http.ListUsers: usecase ListUsers failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUsersResp(o))
}

// @Summary Manager dashboard
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboardResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/auth/manager/dashboard [get]
func (h *handler) ManagerDashboard(c *gin.Context) {
	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newDashboardResp(sc))
}
